// Package async runs I/O-bound validation checks concurrently and
// folds their findings into the same error tree the validate engine
// produces.
//
// The engine's walk is deliberately synchronous; checks that consult
// external state, such as "email must be unique" against a database,
// belong in this surrounding layer. Each FieldCheck targets one field
// by dotted path, every check runs in its own goroutine, and all are
// awaited before Run returns. Violations stay data; only
// infrastructure failures surface as errors.
//
// # Usage
//
//	tree, err := validate.Validate(payload, payload, set)
//	if err != nil {
//		return err
//	}
//	external, err := async.Run(ctx, payload,
//		async.Field("email", store.EmailIsFree),
//		async.Field("sku", catalog.SKUExists),
//	)
//	if err != nil {
//		return err
//	}
//	tree = validate.Merge(tree, external)
//
// Checks receive the value at their field path, extracted the same way
// the engine reads fields, plus the root object and a context that
// carries cancellation. RunTimeout bounds the whole batch with a
// deadline.
package async

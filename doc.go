// Package validate is a declarative validation engine for dynamic,
// JSON-shaped data such as decoded request bodies. A rule-set declares
// the constraints per field; the engine walks the rule-set recursively
// and returns a sparse error tree mirroring the failing part of the
// object, ready to marshal straight into an API response.
//
// # Rule-sets
//
// A Set maps field names to rules. Rules come in four kinds, each with
// its own constructor:
//
//	product := validate.Set{
//		"name": validate.Rules(rules.Required(), rules.MaxLen(120)),
//		"owner": validate.Object(validate.Set{
//			"email": validate.Rules(rules.Required(), rules.Email()),
//		}),
//		"prices": validate.Array(
//			validate.ArrayRules(rules.NotEmpty()),
//			validate.Each(validate.Set{
//				"level": validate.Rules(rules.Required()),
//				"price": validate.Rules(rules.Required(), rules.Positive()),
//			}),
//		),
//		"discount": validate.Dynamic(func(value, root any) validate.Rule {
//			if total(root) < 100 {
//				return validate.Rules()
//			}
//			return validate.Rules(rules.Required())
//		}),
//	}
//
// Rule-sets are plain values: author them once, share them freely. They
// are never mutated by the engine, so a single rule-set is safe for
// concurrent use across goroutines.
//
// # Walking
//
// Validation is driven by the rule-set's keys, never the object's. A
// declared field missing from the object is still checked, which is how
// presence rules fire against absent data, and object fields without a
// rule are ignored entirely. A nil object validates like an empty one.
//
// Rule functions receive two values: the field's current value and the
// root object originally submitted, so a check can reach sibling or
// ancestor data (password confirmation, totals, sequential numbering).
//
// # Violations and configuration errors
//
// The two failure categories never mix. Violations, produced by rule
// functions returning a non-nil error, are ordinary data: they are
// collected into the returned ErrorTree and no Go error is raised for
// them. Configuration errors, such as a nil rule-set or a Rule not
// built with a constructor, indicate a bug in rule authoring: Validate
// fails fast with a sentinel-wrapped error the moment the malformed
// rule is reached.
//
//	tree, err := validate.Validate(payload, payload, product)
//	if err != nil {
//		// broken rule-set, programmer mistake
//	}
//	if tree != nil {
//		// invalid input, tree marshals to the wire shape
//	}
//
// The Apply helper wraps the same walk into a Report with a top-level
// pass/fail flag for handler code.
package validate

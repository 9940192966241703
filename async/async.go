package async

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/validate"
)

// CheckFunc inspects one field's value against external state. It
// returns the violation message for the field, "" when the value
// passes, or an error when the check itself could not run.
type CheckFunc func(ctx context.Context, value, root any) (string, error)

// FieldCheck pairs a dotted field path with the check that validates
// it. A nil Check completes immediately without findings.
type FieldCheck struct {
	Field string
	Check CheckFunc
}

// Field builds a FieldCheck for the given dotted path.
func Field(path string, check CheckFunc) FieldCheck {
	return FieldCheck{Field: path, Check: check}
}

// future holds the eventual outcome of one check.
type future struct {
	violation string
	err       error
	done      chan struct{}
}

// start launches a check in its own goroutine. A context canceled
// before the check begins records the cancellation error instead of
// invoking the check.
func start(ctx context.Context, value, root any, check CheckFunc) *future {
	f := &future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if check == nil {
			return
		}
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}
		f.violation, f.err = check(ctx, value, root)
	}()

	return f
}

func launch(ctx context.Context, root any, checks []FieldCheck) []*future {
	futures := make([]*future, len(checks))
	for i, fc := range checks {
		value, _ := validate.Field(root, fc.Field)
		futures[i] = start(ctx, value, root, fc.Check)
	}
	return futures
}

// collect folds settled futures into a tree. Callers must ensure every
// future is done before calling.
func collect(checks []FieldCheck, futures []*future) (validate.ErrorTree, error) {
	var tree validate.ErrorTree
	var errs []error

	for i, f := range futures {
		<-f.done
		if f.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", checks[i].Field, f.err))
			continue
		}
		if f.violation == "" {
			continue
		}
		tree = validate.Merge(tree, fieldTree(checks[i].Field, f.violation))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return tree, nil
}

// fieldTree expands a dotted path into a nested single-violation tree.
func fieldTree(path, violation string) validate.ErrorTree {
	parts := strings.Split(path, ".")
	tree := validate.ErrorTree{
		parts[len(parts)-1]: &validate.FieldError{Violations: []string{violation}},
	}
	for i := len(parts) - 2; i >= 0; i-- {
		tree = validate.ErrorTree{parts[i]: &validate.FieldError{Fields: tree}}
	}
	return tree
}

// Run evaluates every check concurrently against the root object and
// assembles the violations into an error tree that merges cleanly with
// the engine's output. Each check receives the value at its field
// path. All checks are awaited before Run returns; infrastructure
// failures are joined so none is lost, and a non-nil error means the
// tree must be discarded.
func Run(ctx context.Context, root any, checks ...FieldCheck) (validate.ErrorTree, error) {
	return collect(checks, launch(ctx, root, checks))
}

// RunTimeout is Run bounded by a deadline. When the deadline expires
// first it returns ErrTimeout; checks still running are abandoned and
// their findings dropped.
func RunTimeout(ctx context.Context, timeout time.Duration, root any, checks ...FieldCheck) (validate.ErrorTree, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	futures := launch(ctx, root, checks)
	for _, f := range futures {
		select {
		case <-f.done:
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, ErrTimeout
			}
			return nil, ctx.Err()
		}
	}
	return collect(checks, futures)
}

package validate

import "fmt"

// maxBuilderDepth bounds chains of dynamic rules resolving to further
// dynamic rules. Longer chains indicate a construction cycle.
const maxBuilderDepth = 8

// Validate checks object against the rule-set and returns an error tree
// keyed by the fields that failed, or nil when everything passed. root
// is handed to every rule function and builder for cross-field checks;
// top-level callers normally pass the object itself (see Apply).
//
// A nil object is validated as an empty one, so presence rules on
// declared fields still fire. Iteration follows the rule-set's keys:
// object fields without a rule are never inspected. Neither object nor
// root is mutated.
//
// The error return signals configuration mistakes only: a nil rule-set,
// a zero Rule, an array rule combining Each with EachFunc, or a dynamic
// rule that never resolves. It is raised the moment the malformed rule
// is reached and carries no tree. Violations never surface here; they
// are the tree.
func Validate(object, root any, set Set) (ErrorTree, error) {
	if set == nil {
		return nil, ErrMissingRuleSet
	}
	if object == nil {
		object = emptyObject
	}
	var tree ErrorTree
	for name, rule := range set {
		fe, err := applyRule(name, fieldValue(object, name), root, rule, 0)
		if err != nil {
			return nil, err
		}
		if fe == nil {
			continue
		}
		if tree == nil {
			tree = ErrorTree{}
		}
		tree[name] = fe
	}
	return tree, nil
}

// applyRule dispatches one field's rule by kind. depth counts chained
// dynamic resolutions for this field only.
func applyRule(field string, value, root any, r Rule, depth int) (*FieldError, error) {
	switch r.kind {
	case kindRules:
		return runChecks(value, root, r.checks), nil
	case kindObject:
		return applyObject(field, value, root, r.fields)
	case kindArray:
		return applyArray(field, value, root, r.array)
	case kindDynamic:
		if r.build == nil {
			return nil, fmt.Errorf("%w: field %q has a nil dynamic builder", ErrInvalidRule, field)
		}
		if depth >= maxBuilderDepth {
			return nil, fmt.Errorf("%w: field %q", ErrBuilderDepth, field)
		}
		return applyRule(field, value, root, r.build(value, root), depth+1)
	default:
		return nil, fmt.Errorf("%w: field %q was not built with a rule constructor", ErrInvalidRule, field)
	}
}

// runChecks evaluates value checks in order, collecting every violation
// without short-circuiting. Nil entries are skipped.
func runChecks(value, root any, checks []RuleFunc) *FieldError {
	var violations []string
	for _, fn := range checks {
		if fn == nil {
			continue
		}
		if err := fn(value, root); err != nil {
			violations = append(violations, err.Error())
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return &FieldError{Violations: violations}
}

// applyObject recurses into a nested object with the same root. Values
// that are not object-shaped are skipped rather than failed; a presence
// rule on the same field is the way to make the object mandatory.
func applyObject(field string, value, root any, fields Set) (*FieldError, error) {
	if fields == nil {
		return nil, fmt.Errorf("%w: field %q has a nil nested rule-set", ErrMissingRuleSet, field)
	}
	if !isObject(value) {
		return nil, nil
	}
	sub, err := Validate(value, root, fields)
	if err != nil {
		return nil, err
	}
	if len(sub) == 0 {
		return nil, nil
	}
	return &FieldError{Fields: sub}, nil
}

// applyArray runs every whole-array check exactly once against the raw
// field value, then walks elements in index order when the value really
// is a slice or array. Non-array values skip the element walk without
// failing; whole-array checks still see them.
func applyArray(field string, value, root any, spec arraySpec) (*FieldError, error) {
	if spec.conflict {
		return nil, fmt.Errorf("%w: field %q configures both Each and EachFunc", ErrConflictingElementRules, field)
	}
	var ae ArrayError
	for _, fn := range spec.rules {
		if fn == nil {
			continue
		}
		if err := fn(value, root); err != nil {
			ae.Rules = append(ae.Rules, err.Error())
		}
	}
	if spec.each != nil || spec.eachFn != nil {
		if elems, ok := asSlice(value); ok {
			for i, el := range elems {
				fields := spec.each
				if spec.eachFn != nil {
					fields = spec.eachFn(el, root)
				}
				if fields == nil {
					continue
				}
				sub, err := Validate(el, root, fields)
				if err != nil {
					return nil, fmt.Errorf("field %q element %d: %w", field, i, err)
				}
				if len(sub) > 0 {
					ae.Elements = append(ae.Elements, ElementError{Index: i, Errors: sub, AttemptedValue: el})
				}
			}
		}
	}
	if len(ae.Rules) == 0 && len(ae.Elements) == 0 {
		return nil, nil
	}
	return &FieldError{Array: &ae}, nil
}

package rules

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/validate"
)

// SameAs checks that the value equals the root's value at a dotted
// field path, such as "password" or "customer.email". Numbers compare
// across kinds like OneOf.
func SameAs(path string) validate.RuleFunc {
	violation := fmt.Errorf("must match %s", path)
	return func(value, root any) error {
		if value == nil {
			return nil
		}
		other, ok := validate.Field(root, path)
		if !ok || !looseEqual(value, other) {
			return violation
		}
		return nil
	}
}

// OneOf checks membership in the allowed values. Numeric options match
// any numeric kind, so a decoded JSON number equals an int literal.
func OneOf(options ...any) validate.RuleFunc {
	parts := make([]string, len(options))
	for i, o := range options {
		parts[i] = fmt.Sprintf("%v", o)
	}
	violation := fmt.Errorf("must be one of: %s", strings.Join(parts, ", "))
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		for _, o := range options {
			if looseEqual(value, o) {
				return nil
			}
		}
		return violation
	}
}

// When gates a check behind a predicate over the value and root, so a
// rule can depend on sibling data without reaching for a dynamic
// builder.
func When(pred func(value, root any) bool, fn validate.RuleFunc) validate.RuleFunc {
	return func(value, root any) error {
		if pred == nil || fn == nil {
			return nil
		}
		if !pred(value, root) {
			return nil
		}
		return fn(value, root)
	}
}

package rules

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/validate"
)

// NotEmpty fails for nil values and empty collections. It is the
// presence check for array fields, typically declared among the
// whole-array rules.
func NotEmpty() validate.RuleFunc {
	violation := errors.New("must not be empty")
	return func(value, _ any) error {
		if value == nil {
			return violation
		}
		n, ok := count(value)
		if !ok {
			return errNotArray
		}
		if n == 0 {
			return violation
		}
		return nil
	}
}

// MinItems checks that a collection has at least min items.
func MinItems(min int) validate.RuleFunc {
	violation := fmt.Errorf("must have at least %d items", min)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		n, ok := count(value)
		if !ok {
			return errNotArray
		}
		if n < min {
			return violation
		}
		return nil
	}
}

// MaxItems checks that a collection has at most max items.
func MaxItems(max int) validate.RuleFunc {
	violation := fmt.Errorf("must have at most %d items", max)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		n, ok := count(value)
		if !ok {
			return errNotArray
		}
		if n > max {
			return violation
		}
		return nil
	}
}

// Distinct rejects arrays containing duplicate keys. label names the
// duplicated thing in the message ("levels", "SKUs"); key derives the
// comparison key from each element and must return a comparable value,
// often a composite built from several element fields.
func Distinct(label string, key func(element any) any) validate.RuleFunc {
	violation := fmt.Errorf("must not contain duplicate %s", label)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return errNotArray
		}
		seen := make(map[any]struct{}, rv.Len())
		for i := range rv.Len() {
			k := key(rv.Index(i).Interface())
			if _, dup := seen[k]; dup {
				return violation
			}
			seen[k] = struct{}{}
		}
		return nil
	}
}

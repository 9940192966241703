package rules

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/validate"
)

// Required fails for absent values: nil, whitespace-only strings, nil
// pointers, and empty collections. Numbers and booleans always pass,
// zero included, since a zero is a present value in dynamic data.
func Required() validate.RuleFunc {
	violation := errors.New("field is required")
	return func(value, _ any) error {
		if value == nil {
			return violation
		}
		switch rv := reflect.ValueOf(value); rv.Kind() {
		case reflect.String:
			if strings.TrimSpace(rv.String()) == "" {
				return violation
			}
		case reflect.Slice, reflect.Array, reflect.Map:
			if rv.Len() == 0 {
				return violation
			}
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return violation
			}
		}
		return nil
	}
}

// MinLen checks that a string is at least min bytes long.
func MinLen(min int) validate.RuleFunc {
	violation := fmt.Errorf("must be at least %d characters long", min)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		if len(s) < min {
			return violation
		}
		return nil
	}
}

// MaxLen checks that a string is at most max bytes long.
func MaxLen(max int) validate.RuleFunc {
	violation := fmt.Errorf("must be at most %d characters long", max)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		if len(s) > max {
			return violation
		}
		return nil
	}
}

// Len checks that a string is exactly the given length in bytes.
func Len(exact int) validate.RuleFunc {
	violation := fmt.Errorf("must be exactly %d characters long", exact)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		if len(s) != exact {
			return violation
		}
		return nil
	}
}

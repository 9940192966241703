package rules

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/validate"
)

// Min checks that a numeric value is at least min.
func Min(min float64) validate.RuleFunc {
	violation := fmt.Errorf("must be at least %v", min)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		f, ok := toFloat(value)
		if !ok {
			return errNotNumber
		}
		if f < min {
			return violation
		}
		return nil
	}
}

// Max checks that a numeric value is at most max.
func Max(max float64) validate.RuleFunc {
	violation := fmt.Errorf("must be at most %v", max)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		f, ok := toFloat(value)
		if !ok {
			return errNotNumber
		}
		if f > max {
			return violation
		}
		return nil
	}
}

// Between checks that a numeric value falls inside the inclusive range.
func Between(min, max float64) validate.RuleFunc {
	violation := fmt.Errorf("must be between %v and %v", min, max)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		f, ok := toFloat(value)
		if !ok {
			return errNotNumber
		}
		if f < min || f > max {
			return violation
		}
		return nil
	}
}

// Positive checks that a numeric value is greater than zero.
func Positive() validate.RuleFunc {
	violation := errors.New("must be positive")
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		f, ok := toFloat(value)
		if !ok {
			return errNotNumber
		}
		if f <= 0 {
			return violation
		}
		return nil
	}
}

// NonNegative checks that a numeric value is zero or greater.
func NonNegative() validate.RuleFunc {
	violation := errors.New("must not be negative")
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		f, ok := toFloat(value)
		if !ok {
			return errNotNumber
		}
		if f < 0 {
			return violation
		}
		return nil
	}
}

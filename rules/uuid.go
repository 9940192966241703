package rules

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validate"
)

// UUID checks canonical UUID format. Length and hyphen positions are
// verified first so obviously malformed values skip the parse.
func UUID() validate.RuleFunc {
	violation := errors.New("must be a valid UUID")
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		if !wellFormedUUID(s) {
			return violation
		}
		if _, err := uuid.Parse(s); err != nil {
			return violation
		}
		return nil
	}
}

// NonNilUUID accepts uuid.UUID values and canonical strings, rejecting
// absent values, malformed input, and the zero UUID alike. Unlike most
// checks it fails for nil: asserting a usable UUID is a presence claim.
func NonNilUUID() validate.RuleFunc {
	violation := errors.New("UUID cannot be nil")
	return func(value, _ any) error {
		if value == nil {
			return violation
		}
		if id, ok := value.(uuid.UUID); ok {
			if id == uuid.Nil {
				return violation
			}
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		if !wellFormedUUID(s) {
			return violation
		}
		id, err := uuid.Parse(s)
		if err != nil || id == uuid.Nil {
			return violation
		}
		return nil
	}
}

func wellFormedUUID(s string) bool {
	return len(s) == 36 && s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-'
}

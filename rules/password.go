package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/validate"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// commonPasswords holds frequently compromised passwords. Lookups are
// lowercased.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"123456":      {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty":      {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"abc123":      {},
	"abcd1234":    {},
	"letmein":     {},
	"welcome":     {},
	"iloveyou":    {},
	"admin":       {},
	"admin123":    {},
	"root":        {},
	"guest":       {},
	"test":        {},
	"user":        {},
	"login":       {},
	"master":      {},
	"secret":      {},
	"trustno1":    {},
	"dragon":      {},
	"monkey":      {},
	"sunshine":    {},
	"princess":    {},
	"football":    {},
	"baseball":    {},
	"superman":    {},
	"batman":      {},
	"1q2w3e4r":    {},
	"1qaz2wsx":    {},
	"zaq12wsx":    {},
	"asdfghjkl":   {},
	"zxcvbnm":     {},
	"111111":      {},
	"000000":      {},
	"123123":      {},
	"654321":      {},
}

// PasswordPolicy bounds password length and the required mix of
// character classes (uppercase, lowercase, digit, special).
type PasswordPolicy struct {
	MinLength      int
	MaxLength      int
	MinCharClasses int
}

// DefaultPasswordPolicy follows the NIST recommendation: 8-128
// characters drawing on at least three character classes.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: 8, MaxLength: 128, MinCharClasses: 3}
}

// StrongPassword checks length bounds and counts character classes
// against the policy.
func StrongPassword(policy PasswordPolicy) validate.RuleFunc {
	violation := fmt.Errorf("must be %d-%d characters with a mix of character types", policy.MinLength, policy.MaxLength)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		if len(s) < policy.MinLength || len(s) > policy.MaxLength {
			return violation
		}
		classes := 0
		for _, re := range []*regexp.Regexp{uppercaseRegex, lowercaseRegex, digitRegex, specialCharRegex} {
			if re.MatchString(s) {
				classes++
			}
		}
		if classes < policy.MinCharClasses {
			return violation
		}
		return nil
	}
}

// NotCommonPassword rejects passwords from the known-compromised list.
func NotCommonPassword() validate.RuleFunc {
	violation := errors.New("password is too common, please choose a different one")
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		if _, found := commonPasswords[strings.ToLower(s)]; found {
			return violation
		}
		return nil
	}
}

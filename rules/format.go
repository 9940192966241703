package rules

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/validate"
)

var (
	// International format with optional country code, E.164 style.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericRegex      = regexp.MustCompile(`^[0-9]+$`)
)

// Email checks RFC 5322 address syntax plus the tightening typical web
// forms expect: a single @, a non-empty local part, and a dotted domain
// without empty labels.
func Email() validate.RuleFunc {
	violation := errors.New("must be a valid email address")
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		if !validEmail(s) {
			return violation
		}
		return nil
	}
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL checks for an absolute URL with both scheme and host.
func URL() validate.RuleFunc {
	violation := errors.New("must be a valid URL")
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		u, err := url.ParseRequestURI(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return violation
		}
		return nil
	}
}

// URLWithScheme checks for an absolute URL using one of the given
// schemes.
func URLWithScheme(schemes ...string) validate.RuleFunc {
	violation := fmt.Errorf("must be a valid URL with scheme: %s", strings.Join(schemes, ", "))
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		u, err := url.ParseRequestURI(s)
		if err != nil || u.Host == "" || !slices.Contains(schemes, u.Scheme) {
			return violation
		}
		return nil
	}
}

// Phone checks for an international phone number. Spaces and dashes are
// stripped before matching, so "+1 234-567-8901" passes.
func Phone() validate.RuleFunc {
	violation := errors.New("must be a valid phone number in international format")
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		cleaned := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")
		if len(cleaned) < 7 || !phoneRegex.MatchString(cleaned) {
			return violation
		}
		return nil
	}
}

// Alpha checks that a string contains only letters.
func Alpha() validate.RuleFunc {
	return matchRegexp(alphaRegex, "must contain only letters")
}

// Alphanumeric checks that a string contains only letters and numbers.
func Alphanumeric() validate.RuleFunc {
	return matchRegexp(alphanumericRegex, "must contain only letters and numbers")
}

// NumericString checks that a string contains only digits.
func NumericString() validate.RuleFunc {
	return matchRegexp(numericRegex, "must contain only digits")
}

// Match checks the value against a compiled pattern, reporting msg on
// failure.
func Match(re *regexp.Regexp, msg string) validate.RuleFunc {
	return matchRegexp(re, msg)
}

func matchRegexp(re *regexp.Regexp, msg string) validate.RuleFunc {
	violation := errors.New(msg)
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		s, ok := str(value)
		if !ok {
			return errNotString
		}
		if !re.MatchString(s) {
			return violation
		}
		return nil
	}
}

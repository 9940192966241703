package validate

import "errors"

var (
	// ErrMissingRuleSet is returned when a validation is attempted
	// without a rule-set, at the top level or nested inside an Object
	// rule.
	ErrMissingRuleSet = errors.New("rule-set is required")

	// ErrInvalidRule is returned when a rule-set entry was not created
	// through one of the rule constructors.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrConflictingElementRules is returned when an array rule
	// configures both a static element rule-set and an element rule-set
	// builder.
	ErrConflictingElementRules = errors.New("conflicting array element rules")

	// ErrBuilderDepth is returned when dynamic rules keep resolving to
	// further dynamic rules without ever producing a concrete rule.
	ErrBuilderDepth = errors.New("dynamic rule resolution too deep")
)

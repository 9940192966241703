package validate

// ruleKind discriminates the rule variants. The zero value is invalid
// so that a Rule assembled without a constructor is caught as a
// configuration error instead of silently validating nothing.
type ruleKind int

const (
	kindInvalid ruleKind = iota
	kindRules
	kindObject
	kindArray
	kindDynamic
)

// RuleFunc checks one value. A nil return means the value passed; a
// non-nil error carries the violation message. root is the object
// originally handed to Validate, giving checks access to sibling and
// ancestor fields.
type RuleFunc func(value, root any) error

// Set maps field names to rules. Validation walks the set's keys, never
// the object's, so a declared field is checked even when the object
// omits it, and object fields without a rule are ignored.
type Set map[string]Rule

// ElementRules builds the rule-set for a single array element. It is
// invoked once per element with the element value and the root.
// Returning nil skips the element.
type ElementRules func(element, root any) Set

// BuilderFunc resolves a rule at validation time from the current field
// value and the root.
type BuilderFunc func(value, root any) Rule

// Rule is one node of a rule-set: an ordered list of value checks, a
// nested rule-set, an array specification, or a deferred builder.
// Construct values with Rules, Object, Array, or Dynamic; the zero
// value is rejected during validation.
type Rule struct {
	kind   ruleKind
	checks []RuleFunc
	fields Set
	array  arraySpec
	build  BuilderFunc
}

type arraySpec struct {
	rules    []RuleFunc
	each     Set
	eachFn   ElementRules
	conflict bool
}

// Rules declares a field validated by the given checks, applied in
// order with no short-circuit: every failing check contributes its own
// violation. Nil entries are skipped, so lists can be assembled
// conditionally.
func Rules(fns ...RuleFunc) Rule {
	return Rule{kind: kindRules, checks: fns}
}

// Object declares a field holding a nested object validated by its own
// rule-set. Values that are not object-shaped are skipped rather than
// failed, so pair the field with a presence check when the object
// itself is mandatory.
func Object(fields Set) Rule {
	return Rule{kind: kindObject, fields: fields}
}

// ArrayOption configures an Array rule.
type ArrayOption func(*arraySpec)

// ArrayRules adds checks evaluated once each against the whole array
// value: emptiness, length bounds, duplicate detection across elements.
func ArrayRules(fns ...RuleFunc) ArrayOption {
	return func(s *arraySpec) {
		s.rules = append(s.rules, fns...)
	}
}

// Each validates every element against a static rule-set. Mutually
// exclusive with EachFunc.
func Each(fields Set) ArrayOption {
	return func(s *arraySpec) {
		if s.eachFn != nil {
			s.conflict = true
		}
		s.each = fields
	}
}

// EachFunc validates every element against a rule-set built from the
// element itself, letting element rules depend on the element's own
// data. Mutually exclusive with Each.
func EachFunc(fn ElementRules) ArrayOption {
	return func(s *arraySpec) {
		if s.each != nil {
			s.conflict = true
		}
		s.eachFn = fn
	}
}

// Array declares an array field combining whole-array checks with
// optional per-element validation. Configuring both Each and EachFunc
// is reported by Validate as a configuration error.
func Array(opts ...ArrayOption) Rule {
	var s arraySpec
	for _, opt := range opts {
		opt(&s)
	}
	return Rule{kind: kindArray, array: s}
}

// Dynamic defers rule construction to validation time. The builder runs
// exactly once per field per validation call, receiving the field's
// current value and the root, and may return any rule kind, arrays
// included. A builder that decides no checks are needed should resolve
// to Rules().
func Dynamic(build BuilderFunc) Rule {
	return Rule{kind: kindDynamic, build: build}
}

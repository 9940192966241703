// Package rules is a library of check constructors for the validate
// engine. Every constructor returns a validate.RuleFunc closure with
// its violation message built once up front, so rule-sets stay cheap to
// evaluate and safe to share.
//
// # Optional by default
//
// Checks other than Required, NotEmpty, and NonNilUUID pass nil values
// through: an absent field only fails the rules that assert presence.
// Compose them to make a field mandatory:
//
//	"email": validate.Rules(rules.Required(), rules.Email())
//
// An empty string, by contrast, is a present value and is checked like
// any other.
//
// # Dynamic data
//
// Values usually arrive from decoded JSON, so checks coerce across the
// kinds such data takes: any Go numeric kind (and json.Number)
// satisfies the numeric checks, named string types satisfy the string
// checks, and typed slices count like []any. A value of an unrelated
// kind fails with a plain type violation such as "must be a string".
//
// # Cross-field checks
//
// Checks receive the validation root as their second argument. SameAs,
// OneOf, and When cover the common cases; custom cross-field logic is a
// plain closure over whatever the rule needs.
package rules

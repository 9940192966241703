package commerce

import (
	"errors"

	"github.com/dmitrymomot/validate"
	"github.com/dmitrymomot/validate/rules"
)

// RegistrationRules validates a user registration payload. Age and
// phone are optional; everything else must be present.
func RegistrationRules() validate.Set {
	return validate.Set{
		"fullName": validate.Rules(rules.Required(), rules.MinLen(2), rules.MaxLen(100)),
		"email":    validate.Rules(rules.Required(), rules.Email()),
		"password": validate.Rules(
			rules.Required(),
			rules.StrongPassword(rules.DefaultPasswordPolicy()),
			rules.NotCommonPassword(),
		),
		"confirmPassword": validate.Rules(rules.Required(), rules.SameAs("password")),
		"age":             validate.Rules(rules.Min(16), rules.Max(150)),
		"phone":           validate.Rules(rules.Phone()),
	}
}

// ProductRules validates a product payload. The prices array must not
// be empty and must contain a default price level; each entry needs a
// known level and a positive price.
func ProductRules() validate.Set {
	return validate.Set{
		"name": validate.Rules(rules.Required(), rules.MaxLen(200)),
		"sku":  validate.Rules(rules.Required(), rules.Alphanumeric(), rules.MaxLen(64)),
		"prices": validate.Array(
			validate.ArrayRules(rules.NotEmpty(), hasDefaultLevel()),
			validate.Each(validate.Set{
				"level": validate.Rules(rules.Required(), rules.OneOf("default", "retail", "wholesale")),
				"price": validate.Rules(rules.Required(), rules.Positive()),
			}),
		),
		"tags": validate.Array(
			validate.ArrayRules(
				rules.MaxItems(10),
				rules.Distinct("tags", func(element any) any { return element }),
			),
		),
	}
}

// hasDefaultLevel fails unless at least one price entry uses the
// default level. Non-array values are left to the other array rules.
func hasDefaultLevel() validate.RuleFunc {
	violation := errors.New("must contain a default price level")
	return func(value, _ any) error {
		entries, ok := value.([]any)
		if !ok {
			return nil
		}
		for _, entry := range entries {
			if level, ok := validate.Field(entry, "level"); ok && level == "default" {
				return nil
			}
		}
		return violation
	}
}

// OrderRules validates an order payload. Line rules depend on the line
// itself: serialized products must list one serial number per unit.
// The coupon rule is built from the order total at validation time.
func OrderRules() validate.Set {
	return validate.Set{
		"customer": validate.Object(validate.Set{
			"fullName": validate.Rules(rules.Required(), rules.MaxLen(100)),
			"email":    validate.Rules(rules.Required(), rules.Email()),
			"address": validate.Object(validate.Set{
				"city":    validate.Rules(rules.Required()),
				"country": validate.Rules(rules.Required(), rules.Len(2), rules.Alpha()),
			}),
		}),
		"total": validate.Rules(rules.Required(), rules.Positive()),
		"lines": validate.Array(
			validate.ArrayRules(rules.NotEmpty(), rules.MaxItems(100)),
			validate.EachFunc(lineRules),
		),
		"coupon": validate.Dynamic(couponRule),
	}
}

// lineRules builds the rule-set for one order line from the line's own
// data.
func lineRules(line, _ any) validate.Set {
	set := validate.Set{
		"sku":      validate.Rules(rules.Required(), rules.Alphanumeric()),
		"quantity": validate.Rules(rules.Required(), rules.Positive()),
	}

	if serialized, ok := validate.Field(line, "serialized"); ok && serialized == true {
		qty := intField(line, "quantity")
		set["serialNumbers"] = validate.Rules(
			rules.NotEmpty(),
			rules.MinItems(qty),
			rules.MaxItems(qty),
			rules.Distinct("serial numbers", func(element any) any { return element }),
		)
	}
	return set
}

// couponRule accepts a code only when the order total reaches the
// coupon threshold; smaller orders must not send one. An absent coupon
// always passes.
func couponRule(_, root any) validate.Rule {
	total, _ := validate.Field(root, "total")
	if asFloat(total) >= 100 {
		return validate.Rules(rules.Alphanumeric(), rules.MinLen(4), rules.MaxLen(12))
	}
	return validate.Rules(belowCouponThreshold())
}

func belowCouponThreshold() validate.RuleFunc {
	violation := errors.New("coupons require an order total of at least 100")
	return func(value, _ any) error {
		if value == nil {
			return nil
		}
		return violation
	}
}

// intField reads a numeric field from decoded JSON, where numbers
// arrive as float64, or from hand-built payloads using int.
func intField(object any, path string) int {
	raw, ok := validate.Field(object, path)
	if !ok {
		return 0
	}
	return int(asFloat(raw))
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

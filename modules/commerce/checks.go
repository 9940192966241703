package commerce

import (
	"context"

	"github.com/dmitrymomot/validate/async"
)

// EmailIsFree builds the check that rejects already registered emails.
// Presence and format are the rule-set's job, so blank and non-string
// values pass here.
func EmailIsFree(users Users) async.CheckFunc {
	return func(ctx context.Context, value, _ any) (string, error) {
		email, ok := value.(string)
		if !ok || email == "" {
			return "", nil
		}
		taken, err := users.EmailTaken(ctx, email)
		if err != nil {
			return "", err
		}
		if taken {
			return "email is already registered", nil
		}
		return "", nil
	}
}

// SKUIsFree builds the check that rejects SKUs already in the catalog.
func SKUIsFree(catalog Catalog) async.CheckFunc {
	return func(ctx context.Context, value, _ any) (string, error) {
		sku, ok := value.(string)
		if !ok || sku == "" {
			return "", nil
		}
		exists, err := catalog.SKUExists(ctx, sku)
		if err != nil {
			return "", err
		}
		if exists {
			return "sku is already in use", nil
		}
		return "", nil
	}
}

// NameIsAllowed builds the check that rejects reserved product names.
func NameIsAllowed(catalog Catalog) async.CheckFunc {
	return func(ctx context.Context, value, _ any) (string, error) {
		name, ok := value.(string)
		if !ok || name == "" {
			return "", nil
		}
		reserved, err := catalog.NameReserved(ctx, name)
		if err != nil {
			return "", err
		}
		if reserved {
			return "this product name is reserved", nil
		}
		return "", nil
	}
}

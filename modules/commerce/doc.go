// Package commerce is a working storefront API built on the validate
// engine. It exists to exercise every engine feature against real
// infrastructure: declarative rule-sets for registration, product and
// order payloads, concurrent database-backed checks, localized error
// trees, and a chi router that answers 422 with the full report.
//
// The package follows the module convention: it exposes a Handler to
// mount rather than a main function.
//
//	module, err := commerce.NewModule(ctx, translator, log)
//	if err != nil {
//		panic(err)
//	}
//	defer module.Close()
//
//	r := chi.NewRouter()
//	r.Mount("/commerce", module.Handler.Router())
//
// Payloads are decoded into plain maps, never typed structs; the
// rule-sets decide which keys matter. PostgreSQL holds users, Redis
// holds the catalog index, and both feed async checks such as "email
// must be unique".
package commerce

// Package i18n translates validation findings for end users.
//
// A Translator serves catalogs of messages keyed by language code.
// Catalogs are plain nested maps loaded from an in-memory MapSource or
// from YAML and JSON files in an fs.FS, so they embed cleanly into a
// binary:
//
//	//go:embed translations
//	var catalogFS embed.FS
//
//	translator, err := i18n.New(ctx, i18n.FSSource{FS: catalogFS, Dir: "translations"})
//
// # Translating error trees
//
// Violation messages double as catalog keys. TranslateTree walks an
// error tree produced by the validate package and swaps each message
// for its translation, leaving messages without a catalog entry
// untouched:
//
//	report, err := validate.Apply(payload, set)
//	if err != nil {
//		return err
//	}
//	report.Errors = translator.TranslateTree(lang, report.Errors)
//
// Messages may carry %{name} placeholders filled from key-value
// argument pairs passed to T.
//
// # Language negotiation
//
// Match resolves an Accept-Language header against the loaded
// catalogs. The Middleware checks the lang cookie, the lang query
// parameter and finally the Accept-Language header, then stores the
// winner in the request context where GetLocale and Tc read it back.
package i18n

package i18n

import (
	"net/http"
	"strings"
)

// maxLangCodeLength caps user-supplied language codes. RFC 5646
// recommends at most 35 characters.
const maxLangCodeLength = 35

// LangExtractor pulls a language code out of an HTTP request.
type LangExtractor func(r *http.Request) string

// Middleware resolves the request language with the extractor and
// stores it in the request context, where GetLocale and Tc read it
// back. An empty extraction falls back to DefaultLanguage.
func Middleware(extract LangExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extract != nil {
				lang = extract(r)
			}
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// DefaultExtractor checks the lang cookie, then the lang query
// parameter, then the Accept-Language header, keeping the first value
// the translator has a catalog for.
func DefaultExtractor(t *Translator) LangExtractor {
	return func(r *http.Request) string {
		if cookie, err := r.Cookie("lang"); err == nil {
			if lang := t.supportedOrEmpty(cookie.Value); lang != "" {
				return lang
			}
		}
		if lang := t.supportedOrEmpty(r.URL.Query().Get("lang")); lang != "" {
			return lang
		}
		if header := r.Header.Get("Accept-Language"); header != "" {
			return t.Match(header)
		}
		return ""
	}
}

// supportedOrEmpty normalizes a user-provided language code and keeps
// it only when a catalog exists for it, trying the base language when
// a regional code like en-US has no catalog of its own.
func (t *Translator) supportedOrEmpty(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := t.catalogs[lang]; ok {
		return lang
	}
	if base, _, found := strings.Cut(lang, "-"); found {
		if _, ok := t.catalogs[base]; ok {
			return base
		}
	}
	return ""
}

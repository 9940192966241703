package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is detected or configured.
const DefaultLanguage = "en"

// Translator resolves message keys to localized strings. Catalogs are
// immutable after New; all methods are safe for concurrent use.
type Translator struct {
	catalogs      map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	matcher       language.Matcher
	matchLangs    []string
	mu            sync.RWMutex
}

// New loads catalogs from the source and builds a Translator. Catalog
// problems are configuration errors and fail construction.
func New(ctx context.Context, source Source, opts ...Option) (*Translator, error) {
	if source == nil {
		return nil, ErrMissingSource
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalogs, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, entries := range catalogs {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if entries == nil {
			return nil, fmt.Errorf("%w: nil entries for language %q", ErrInvalidCatalog, lang)
		}
	}

	t.catalogs = catalogs
	t.buildMatcher()
	t.logger.InfoContext(ctx, "translation catalogs loaded", "languages", t.languages())
	return t, nil
}

// buildMatcher prepares the Accept-Language matcher. The default
// language goes first so it wins when nothing else matches.
func (t *Translator) buildMatcher() {
	ordered := make([]string, 0, len(t.catalogs)+1)
	ordered = append(ordered, t.defaultLang)
	for _, lang := range t.languages() {
		if lang != t.defaultLang {
			ordered = append(ordered, lang)
		}
	}

	tags := make([]language.Tag, 0, len(ordered))
	kept := make([]string, 0, len(ordered))
	for _, lang := range ordered {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		kept = append(kept, lang)
	}
	if len(tags) == 0 {
		return
	}

	t.matcher = language.NewMatcher(tags)
	t.matchLangs = kept
}

func (t *Translator) languages() []string {
	langs := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// SupportedLanguages returns the language codes with a loaded catalog,
// sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.languages()
}

// HasTranslation reports whether a catalog entry exists for the
// language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	catalog, ok := t.catalogs[lang]
	if !ok {
		return false
	}
	_, ok = lookup(catalog, key)
	return ok
}

// Match picks the best catalog language for an Accept-Language header.
// The default language wins when the header is empty or nothing
// matches.
func (t *Translator) Match(header string) string {
	if header == "" || t.matcher == nil {
		return t.defaultLang
	}
	_, idx := language.MatchStrings(t.matcher, header)
	return t.matchLangs[idx]
}

// T translates a key for the given language. Args are key-value pairs
// substituted into %{name} placeholders:
//
//	translator.T("fr", "welcome", "name", "Ada")
//
// A missing language, a missing key or a non-string catalog value
// falls back to the interpolated key itself unless fallback-to-key is
// disabled, in which case T returns "".
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	catalog, ok := t.catalogs[lang]
	if !ok {
		if t.logMissing {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return t.fallback(key, args)
	}

	val, ok := lookup(catalog, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return t.fallback(key, args)
	}

	s, ok := val.(string)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
		}
		return t.fallback(key, args)
	}
	return interpolate(s, args)
}

// Tc translates a key using the language the middleware stored in the
// context.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) fallback(key string, args []string) string {
	if t.fallbackToKey {
		return interpolate(key, args)
	}
	return ""
}

// lookup finds a key in a catalog. Flat entries win, so violation
// messages containing dots still resolve; dotted keys additionally
// traverse nested maps, letting "rules.required" reach
// catalog["rules"]["required"].
func lookup(catalog map[string]any, key string) (any, bool) {
	if val, ok := catalog[key]; ok {
		return val, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}

	current := catalog
	parts := strings.Split(key, ".")
	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}
		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate substitutes %{name} placeholders from key-value args.
// Unknown placeholders stay as written; an odd trailing arg is
// ignored.
func interpolate(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

package i18n

import "log/slog"

// Option configures a Translator during New.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when negotiation finds no
// match. Empty values are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing translation yields the
// key itself. Default is true; with false, misses yield "".
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger. By default logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingLogging enables a warning log for every translation miss.
// Off by default, the volume adds up quickly on busy catalogs.
func WithMissingLogging(log bool) Option {
	return func(t *Translator) {
		t.logMissing = log
	}
}

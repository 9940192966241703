package i18n

import "errors"

var (
	// ErrMissingSource is returned by New when no translation source
	// is provided, and by FSSource when its filesystem is nil or holds
	// no catalog files.
	ErrMissingSource = errors.New("translation source is required")

	// ErrInvalidCatalog indicates a structurally broken catalog, such
	// as an empty language code or a language whose entries are not a
	// map.
	ErrInvalidCatalog = errors.New("invalid translation catalog")

	// ErrReadCatalog wraps filesystem failures while loading catalog
	// files.
	ErrReadCatalog = errors.New("failed to read catalog file")

	// ErrParseCatalog wraps YAML and JSON failures while decoding
	// catalog files.
	ErrParseCatalog = errors.New("failed to parse catalog file")

	// ErrLoadCancelled is returned when the context expires while
	// catalog files are still being loaded.
	ErrLoadCancelled = errors.New("catalog loading cancelled")
)

package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source loads translation catalogs keyed by language code.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource serves catalogs from an in-memory map. Useful for tests
// and for small fixed catalogs defined in code.
type MapSource struct {
	Data map[string]map[string]any
}

// Load implements Source.
func (s MapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	if s.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return s.Data, nil
}

// FSSource loads catalog files from a directory in an fs.FS, which
// covers both embed.FS and os.DirFS. Files ending in .yaml, .yml or
// .json are parsed; everything else is skipped. Each file maps
// language codes to entries, and entries from multiple files merge per
// language with later files winning on key collisions.
//
// A malformed file fails the whole load. Catalogs are configuration,
// and a silently dropped file would surface much later as untranslated
// output.
type FSSource struct {
	FS  fs.FS
	Dir string
}

// Load implements Source.
func (s FSSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if s.FS == nil {
		return nil, fmt.Errorf("%w: nil filesystem", ErrMissingSource)
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		return nil, errors.Join(ErrReadCatalog, err)
	}

	catalogs := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}

		content, err := fs.ReadFile(s.FS, path.Join(dir, name))
		if err != nil {
			return nil, errors.Join(ErrReadCatalog, err)
		}

		parsed, err := parseCatalog(ext, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, langEntries := range parsed {
			if catalogs[lang] == nil {
				catalogs[lang] = make(map[string]any)
			}
			maps.Copy(catalogs[lang], langEntries)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w: no catalog files in %q", ErrMissingSource, dir)
	}
	return catalogs, nil
}

func parseCatalog(ext string, content []byte) (map[string]map[string]any, error) {
	var raw map[string]any
	switch ext {
	case ".json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrParseCatalog, err)
		}
	default:
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrParseCatalog, err)
		}
	}

	catalogs := make(map[string]map[string]any, len(raw))
	for lang, val := range raw {
		entries, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q is not a map", ErrInvalidCatalog, lang)
		}
		catalogs[lang] = entries
	}
	return catalogs, nil
}

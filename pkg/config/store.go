package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store is the read-only configuration lookup the composition layer depends
// on. A missing key is never an error; callers receive the fallback they
// supplied. Implementations must be safe for concurrent readers.
type Store interface {
	// String returns the scalar value stored under key, or fallback when the
	// key is absent or not a scalar.
	String(key, fallback string) string
	// Strings returns the list stored under key, or fallback when the key is
	// absent. A scalar value is promoted to a single-element list.
	Strings(key string, fallback []string) []string
}

// MapStore is an in-memory Store backed by a flat key map. Keys use "/" as
// the segment separator (e.g. "components/cms/page/contact/children").
// Values are strings or string slices.
type MapStore struct {
	values map[string]any
}

// NewMapStore builds a MapStore from flat key/value pairs. The input map is
// copied; nil is accepted and yields an empty store.
func NewMapStore(values map[string]any) *MapStore {
	out := make(map[string]any, len(values))
	for key, value := range values {
		key = strings.Trim(strings.TrimSpace(key), "/")
		if key == "" {
			continue
		}
		out[key] = value
	}
	return &MapStore{values: out}
}

// String implements Store.
func (s *MapStore) String(key, fallback string) string {
	if s == nil {
		return fallback
	}
	value, ok := s.values[normalizeKey(key)]
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
		return fallback
	default:
		return fmt.Sprint(v)
	}
}

// Strings implements Store.
func (s *MapStore) Strings(key string, fallback []string) []string {
	if s == nil {
		return fallback
	}
	value, ok := s.values[normalizeKey(key)]
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}

// LoadYAML reads a YAML document and flattens its nested mappings into a
// MapStore, joining nested keys with "/". Slash-delimited component type
// paths therefore map naturally onto nested YAML sections:
//
//	components:
//	  cms:
//	    page:
//	      contact:
//	        children: [header, body]
//
// resolves under the key "components/cms/page/contact/children".
func LoadYAML(payload []byte) (*MapStore, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	flat := make(map[string]any)
	flatten("", doc, flat)
	return NewMapStore(flat), nil
}

// LoadYAMLFile loads a YAML configuration file from disk.
func LoadYAMLFile(path string) (*MapStore, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return LoadYAML(payload)
}

// LoadYAMLFS loads a YAML configuration file from an fs.FS.
func LoadYAMLFS(fsys fs.FS, path string) (*MapStore, error) {
	payload, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return LoadYAML(payload)
}

func flatten(prefix string, value any, dest map[string]any) {
	switch v := value.(type) {
	case map[string]any:
		for key, nested := range v {
			flatten(joinKey(prefix, key), nested, dest)
		}
	case map[any]any:
		for key, nested := range v {
			flatten(joinKey(prefix, fmt.Sprint(key)), nested, dest)
		}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		dest[prefix] = out
	case nil:
		// Empty YAML nodes carry no value; skip them so callers fall back to
		// their defaults.
	default:
		dest[prefix] = fmt.Sprint(v)
	}
}

func joinKey(prefix, key string) string {
	key = strings.Trim(strings.TrimSpace(key), "/")
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "/" + key
}

func normalizeKey(key string) string {
	return strings.Trim(strings.TrimSpace(key), "/")
}

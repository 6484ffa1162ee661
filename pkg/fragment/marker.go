package fragment

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Marker names are uppercase identifiers so the delimiter pattern stays
// distinct from template syntax and ordinary markup. The byte sequence of a
// marker is stable across cache writes and reads; substitution relies on
// finding it unchanged.
var markerPattern = regexp.MustCompile(`\{\{([A-Z][A-Z0-9_.:-]*)\}\}`)

// Marker returns the placeholder token for name as it should be embedded in
// cacheable output. Names are upper-cased; an empty name yields an empty
// marker which Substitute never matches.
func Marker(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	return "{{" + name + "}}"
}

// ParamMarkerPrefix namespaces markers that stand in for a submitted field's
// echoed value. Submitted input varies per request and must never be baked
// into cacheable output; components emit these markers instead and the
// serving layer resolves them against the current request's parameters.
const ParamMarkerPrefix = "PARAM:"

// ParamMarker returns the placeholder token for field's submitted value.
// Field names are matched case-insensitively: the marker carries the
// upper-cased name and ParamName lowers it again on resolution.
func ParamMarker(field string) string {
	field = strings.ToUpper(strings.TrimSpace(field))
	if field == "" {
		return ""
	}
	return Marker(ParamMarkerPrefix + field)
}

// ParamName reports the submitted field a marker name refers to, or false
// when the name is not param-namespaced.
func ParamName(markerName string) (string, bool) {
	if !strings.HasPrefix(markerName, ParamMarkerPrefix) {
		return "", false
	}
	field := strings.ToLower(markerName[len(ParamMarkerPrefix):])
	if field == "" {
		return "", false
	}
	return field, true
}

// Resolver maps marker names to their per-request values. Resolution happens
// on every serve, cached or fresh, so values bound to the current request
// never end up in cached bytes.
type Resolver interface {
	Resolve(name string) (string, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (string, bool)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(name string) (string, bool) {
	if f == nil {
		return "", false
	}
	return f(name)
}

// ResolverMap resolves markers from a static map.
type ResolverMap map[string]string

// Resolve implements Resolver.
func (m ResolverMap) Resolve(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

// Substitute rewrites every placeholder marker in fragment using resolver.
// It is a single linear pass: replacement text is never re-scanned, so a
// value that happens to contain marker syntax is emitted verbatim. Markers
// with no matching resolver entry degrade to the empty string rather than
// leaking the literal token to end users. Substitute is idempotent over its
// own output.
func Substitute(fragment string, resolver Resolver) string {
	out, _ := SubstituteReport(fragment, resolver)
	return out
}

// SubstituteReport behaves like Substitute and additionally reports the
// marker names that had no resolver entry, in order of appearance, so
// callers can log substitution gaps.
func SubstituteReport(fragment string, resolver Resolver) (string, []string) {
	if !strings.Contains(fragment, "{{") {
		return fragment, nil
	}

	var missing []string
	out := markerPattern.ReplaceAllStringFunc(fragment, func(match string) string {
		name := match[2 : len(match)-2]
		if resolver != nil {
			if value, ok := resolver.Resolve(name); ok {
				return value
			}
		}
		missing = append(missing, name)
		return ""
	})
	return out, missing
}

// NewUID returns an opaque uniqueness token suitable for disambiguating
// multiple placements of the same logical component on one page.
func NewUID() string {
	return uuid.NewString()
}

package render

import (
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Params is the thin request-parameter access layer components read submitted
// input through. Implementations report absence explicitly so callers can
// distinguish a missing field from an empty one.
type Params interface {
	Param(name string) (string, bool)
}

// Values is a Params implementation backed by a plain map.
type Values map[string]string

// Param implements Params.
func (v Values) Param(name string) (string, bool) {
	value, ok := v[name]
	return value, ok
}

// FromURLValues adapts url.Values (e.g. http.Request form data) into Params.
// Repeated fields keep their first value.
func FromURLValues(values url.Values) Params {
	out := make(Values, len(values))
	for name := range values {
		out[name] = values.Get(name)
	}
	return out
}

var (
	submissionPolicyOnce sync.Once
	submissionPolicy     *bluemonday.Policy
)

// SanitizeValue strips all markup from a submitted value before it is echoed
// back into a rendered fragment. Submitted input must never reach cached
// bytes with tags intact.
func SanitizeValue(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	submissionPolicyOnce.Do(func() {
		submissionPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(submissionPolicy.Sanitize(trimmed))
}

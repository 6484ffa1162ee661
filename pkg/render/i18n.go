package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingTranslator signals that translation was requested without a
// configured Translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves user-facing strings for a locale. Implementations
// return an error (or an empty string) when a key has no translation; the
// caller decides the fallback.
type Translator interface {
	Translate(locale, key string, params ...any) (string, error)
}

// MissingTranslationHandler controls the string produced when a translation
// cannot be resolved.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// MapTranslator is a Translator backed by locale-keyed message maps, mainly
// used for tests and small deployments.
type MapTranslator map[string]map[string]string

// Translate implements Translator. Positional params are substituted via
// fmt.Sprintf when the message contains verbs.
func (m MapTranslator) Translate(locale, key string, params ...any) (string, error) {
	messages, ok := m[locale]
	if !ok {
		return "", fmt.Errorf("render: no messages for locale %q", locale)
	}
	message, ok := messages[key]
	if !ok {
		return "", fmt.Errorf("render: no translation for %q in locale %q", key, locale)
	}
	if len(params) > 0 && strings.Contains(message, "%") {
		return fmt.Sprintf(message, params...), nil
	}
	return message, nil
}

// Translate resolves key for locale through t, falling back through onMissing
// and then the fallback text. A nil translator routes straight to onMissing.
// The key itself is returned as a last resort so misconfiguration stays
// visible during development.
func Translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, nil, ErrMissingTranslator)
		}
		return fallbackOrKey(fallback, key)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, nil, err)
	}
	return fallbackOrKey(fallback, key)
}

func fallbackOrKey(fallback, key string) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

package render

import "strings"

// TemplateI18nConfig configures template-level translation helpers.
type TemplateI18nConfig struct {
	// FuncName customises the translator helper name (defaults to
	// "translate").
	FuncName string
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
}

// TemplateI18nFuncs returns helper functions suitable for injecting as
// template globals so component templates can resolve localized strings:
//
//	{{ translate(locale, "contact.success") }}
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	name := strings.TrimSpace(cfg.FuncName)
	if name == "" {
		name = "translate"
	}

	onMissing := cfg.OnMissing
	if onMissing == nil {
		onMissing = func(_, key string, _ []any, _ error) string {
			return key
		}
	}

	return map[string]any{
		name: func(locale, key string) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			if t == nil {
				return onMissing(locale, key, nil, ErrMissingTranslator)
			}
			msg, err := t.Translate(locale, key)
			if err != nil || strings.TrimSpace(msg) == "" {
				return onMissing(locale, key, nil, err)
			}
			return msg
		},
	}
}

// Package i18n resolves bilingual display fields.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const DefaultLocale = "en"

// Translatable exposes the per-locale values of a display field.
type Translatable interface {
	Translations(field string) map[string]string
}

// LocalizedField returns field in locale, falling back to defaultLocale and
// then to the empty string. Locales match exactly first, then by base language
// ("zh-CN" finds "zh").
func LocalizedField(e Translatable, field, locale, defaultLocale string) string {
	if e == nil {
		return ""
	}
	values := e.Translations(field)
	if len(values) == 0 {
		return ""
	}
	if v := lookup(values, locale); v != "" {
		return v
	}
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	return lookup(values, defaultLocale)
}

// Normalize maps a client supplied locale to its base language tag.
// Unparseable input yields "".
func Normalize(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

func lookup(values map[string]string, locale string) string {
	if locale == "" {
		return ""
	}
	if v := values[locale]; v != "" {
		return v
	}
	if base := Normalize(locale); base != "" {
		return values[base]
	}
	return ""
}

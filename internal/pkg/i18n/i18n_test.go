package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type names map[string]string

func (n names) Translations(field string) map[string]string {
	if field != "name" {
		return nil
	}
	return n
}

func TestLocalizedField(t *testing.T) {
	bilingual := names{"en": "Office fit-out", "zh": "办公室装修"}

	tests := []struct {
		name          string
		entity        Translatable
		field         string
		locale        string
		defaultLocale string
		expected      string
	}{
		{name: "exact locale", entity: bilingual, field: "name", locale: "zh", defaultLocale: "en", expected: "办公室装修"},
		{name: "region falls back to base", entity: bilingual, field: "name", locale: "zh-CN", defaultLocale: "en", expected: "办公室装修"},
		{name: "underscore region", entity: bilingual, field: "name", locale: "zh_Hans_CN", defaultLocale: "en", expected: "办公室装修"},
		{name: "unknown locale uses default", entity: bilingual, field: "name", locale: "fr", defaultLocale: "en", expected: "Office fit-out"},
		{name: "empty default uses en", entity: bilingual, field: "name", locale: "de", defaultLocale: "", expected: "Office fit-out"},
		{name: "missing default yields empty", entity: names{"zh": "仅中文"}, field: "name", locale: "fr", defaultLocale: "en", expected: ""},
		{name: "unknown field", entity: bilingual, field: "title", locale: "en", defaultLocale: "en", expected: ""},
		{name: "nil entity", entity: nil, field: "name", locale: "en", defaultLocale: "en", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocalizedField(tt.entity, tt.field, tt.locale, tt.defaultLocale))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "zh", Normalize("zh-TW"))
	assert.Equal(t, "en", Normalize(" en-GB "))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("not a locale!"))
}

// Package i18n translates user-facing strings into the supported languages.
package i18n

import (
	"golang.org/x/text/language"
)

// Language is a supported language code.
type Language string

const (
	Spanish Language = "es"
	English Language = "en"
	French  Language = "fr"
	German  Language = "de"
)

// Default is the language used when nothing else is known.
const Default = Spanish

// Key identifies a translatable string.
type Key int

// String returns the key's name, e.g. "totalPortfolioValue".
func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "unknown"
	}
	return keyNames[k]
}

// LanguageInfo describes a selectable language.
type LanguageInfo struct {
	Code Language `json:"code"`
	Name string   `json:"name"`
	Flag string   `json:"flag"`
}

var available = []LanguageInfo{
	{Code: Spanish, Name: "Español", Flag: "🇪🇸"},
	{Code: English, Name: "English", Flag: "🇺🇸"},
	{Code: French, Name: "Français", Flag: "🇫🇷"},
	{Code: German, Name: "Deutsch", Flag: "🇩🇪"},
}

var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
	language.French,
	language.German,
})

// Available lists the selectable languages in display order.
func Available() []LanguageInfo {
	out := make([]LanguageInfo, len(available))
	copy(out, available)
	return out
}

// Parse returns the Language for a code such as "fr", reporting whether it is supported.
func Parse(code string) (Language, bool) {
	l := Language(code)
	_, ok := tables[l]
	return l, ok
}

// T returns the translation of key in lang. A missing entry falls back to Spanish and then
// to the key's name.
func T(lang Language, key Key) string {
	if s, ok := tables[lang][key]; ok {
		return s
	}
	if s, ok := tables[Default][key]; ok {
		return s
	}
	return key.String()
}

// Table returns every translation of lang keyed by name.
func Table(lang Language) map[string]string {
	out := make(map[string]string, numKeys)
	for k := Key(0); k < numKeys; k++ {
		out[k.String()] = T(lang, k)
	}
	return out
}

// Match picks the best supported language for an Accept-Language header value.
func Match(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return available[idx].Code
}

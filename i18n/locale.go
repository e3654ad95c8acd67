// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import "golang.org/x/text/language"

// Locale identifies one of the site's supported languages.
type Locale string

// The closed set of supported locales.
const (
	EN Locale = "en"
	PT Locale = "pt"
	ES Locale = "es"
)

// DefaultLocale is rendered without a URL prefix.
const DefaultLocale = EN

// Locales lists every supported locale, default first.
var Locales = []Locale{EN, PT, ES}

// localeInfo is the per-locale registry entry. Every supported locale has a
// complete entry; the tables below are configuration data and are never
// mutated at runtime.
type localeInfo struct {
	name string
	flag string
	// htmlLang doubles as the hreflang code; pt is region-qualified as pt-BR
	// for SEO parity with the audience the practice serves.
	htmlLang string
	ogLocale string
	tag      language.Tag
}

var registry = map[Locale]localeInfo{
	EN: {name: "English", flag: "🇺🇸", htmlLang: "en", ogLocale: "en_US", tag: language.English},
	PT: {name: "Português", flag: "🇧🇷", htmlLang: "pt-BR", ogLocale: "pt_BR", tag: language.BrazilianPortuguese},
	ES: {name: "Español", flag: "🇪🇸", htmlLang: "es", ogLocale: "es_ES", tag: language.Spanish},
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	_, ok := registry[l]

	return ok
}

// Name returns the locale's native display name.
func (l Locale) Name() string { return registry[l].name }

// Flag returns the locale's flag emoji for the language switcher.
func (l Locale) Flag() string { return registry[l].flag }

// HTMLLang returns the value for the <html lang> attribute.
func (l Locale) HTMLLang() string { return registry[l].htmlLang }

// OGLocale returns the OpenGraph locale code (og:locale).
func (l Locale) OGLocale() string { return registry[l].ogLocale }

// Hreflang returns the hreflang code for <link rel="alternate"> tags.
// It equals the HTML lang code, which may be region-qualified.
func (l Locale) Hreflang() string { return registry[l].htmlLang }

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag { return registry[l].tag }

// Prefix returns the URL prefix for the locale: "" for the default locale,
// "/<code>" for every other.
func (l Locale) Prefix() string {
	if l == DefaultLocale {
		return ""
	}

	return "/" + string(l)
}

// matcher negotiates Accept-Language headers against the supported set.
// The default locale leads so it wins as the fallback.
var matcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, 0, len(Locales))
	for _, l := range Locales {
		tags = append(tags, registry[l].tag)
	}

	return tags
}())

// MatchAcceptLanguage returns the supported locale that best matches an
// Accept-Language header value, falling back to the default locale.
func MatchAcceptLanguage(header string) Locale {
	if header == "" {
		return DefaultLocale
	}

	_, index := language.MatchStrings(matcher, header)

	return Locales[index]
}

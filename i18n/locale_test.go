// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleRegistryComplete(t *testing.T) {
	for _, loc := range Locales {
		require.True(t, loc.Valid(), "locale %q", loc)
		assert.NotEmpty(t, loc.Name(), "name for %q", loc)
		assert.NotEmpty(t, loc.Flag(), "flag for %q", loc)
		assert.NotEmpty(t, loc.HTMLLang(), "html lang for %q", loc)
		assert.NotEmpty(t, loc.OGLocale(), "og locale for %q", loc)
	}

	assert.False(t, Locale("fr").Valid())
	assert.False(t, Locale("").Valid())
}

func TestLocalePrefix(t *testing.T) {
	assert.Equal(t, "", EN.Prefix())
	assert.Equal(t, "/pt", PT.Prefix())
	assert.Equal(t, "/es", ES.Prefix())
}

func TestLocaleCodes(t *testing.T) {
	assert.Equal(t, "pt-BR", PT.Hreflang())
	assert.Equal(t, "en", EN.Hreflang())
	assert.Equal(t, "es", ES.Hreflang())

	assert.Equal(t, "pt_BR", PT.OGLocale())
	assert.Equal(t, "en_US", EN.OGLocale())
	assert.Equal(t, "es_ES", ES.OGLocale())
}

func TestMatchAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"", EN},
		{"pt-BR,pt;q=0.9,en;q=0.8", PT},
		{"pt", PT},
		{"es-MX", ES},
		{"es-ES,es;q=0.9", ES},
		{"en-GB", EN},
		{"de-DE,de;q=0.9", EN},
		{"garbage;;;", EN},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchAcceptLanguage(tt.header), "header %q", tt.header)
	}
}

func TestNavLinksPerLocale(t *testing.T) {
	for _, loc := range Locales {
		links := NavLinks(loc)
		require.NotEmpty(t, links, "nav links for %q", loc)

		prefix := loc.Prefix()
		for _, link := range links {
			if prefix != "" {
				assert.Contains(t, link.Path, prefix+"/", "link %q for %q", link.Label, loc)
			} else {
				assert.NotContains(t, link.Path, "/pt/", "link %q for %q", link.Label, loc)
				assert.NotContains(t, link.Path, "/es/", "link %q for %q", link.Label, loc)
			}
		}
	}

	// Unknown locale falls back to the default tree.
	assert.Equal(t, NavLinks(EN), NavLinks(Locale("fr")))
}

func TestFooterLinksPerLocale(t *testing.T) {
	for _, loc := range Locales {
		footer := FooterLinksFor(loc)
		assert.NotEmpty(t, footer.Techniques, "techniques column for %q", loc)
		assert.NotEmpty(t, footer.Resources, "resources column for %q", loc)
		assert.NotEmpty(t, footer.Institutional, "institutional column for %q", loc)
	}
}

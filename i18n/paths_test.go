// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPathTable mirrors the shape of data/paths.yaml with a representative
// subset of the real table.
func testPathTable() map[string]map[Locale]string {
	return map[string]map[Locale]string{
		"home": {
			EN: "/",
			PT: "/",
			ES: "/",
		},
		"modern-face-root": {
			EN: "/modern-face",
			PT: "/face-moderna",
			ES: "/face-moderna",
		},
		"modern-face-what-is-it": {
			EN: "/modern-face/what-is-it",
			PT: "/face-moderna/o-que-e",
			ES: "/face-moderna/que-es",
		},
		"blog": {
			EN: "/blog",
			PT: "/blog",
			ES: "/blog",
		},
		"glossary": {
			EN: "/glossary",
			PT: "/glossario",
			ES: "/glosario",
		},
		"contact": {
			EN: "/contact",
			PT: "/contato",
			ES: "/contacto",
		},
	}
}

func installTestPathTable(t *testing.T) {
	t.Helper()

	oldTable, oldIndex := pathTable, pathIndex
	t.Cleanup(func() {
		pathTable, pathIndex = oldTable, oldIndex
	})

	require.NoError(t, setPathTable(testPathTable()))
}

func TestSetPathTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		table   map[string]map[Locale]string
		wantErr string
	}{
		{
			name:  "valid table",
			table: testPathTable(),
		},
		{
			name: "missing locale",
			table: map[string]map[Locale]string{
				"contact": {EN: "/contact", PT: "/contato"},
			},
			wantErr: "missing a slug",
		},
		{
			name: "relative slug",
			table: map[string]map[Locale]string{
				"contact": {EN: "contact", PT: "/contato", ES: "/contacto"},
			},
			wantErr: "relative slug",
		},
		{
			name: "slug claimed twice",
			table: map[string]map[Locale]string{
				"contact": {EN: "/contact", PT: "/contato", ES: "/contacto"},
				"reach":   {EN: "/contact", PT: "/fale-conosco", ES: "/hable-con-nosotros"},
			},
			wantErr: "claimed by both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldTable, oldIndex := pathTable, pathIndex
			t.Cleanup(func() {
				pathTable, pathIndex = oldTable, oldIndex
			})

			err := setPathTable(tt.table)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLocalizedPath(t *testing.T) {
	tests := []struct {
		path string
		loc  Locale
		want string
	}{
		{"/about", EN, "/about"},
		{"/about", PT, "/pt/about"},
		{"/about", ES, "/es/about"},
		{"/pt/about", EN, "/about"},
		{"/pt/about", ES, "/es/about"},
		{"/", EN, "/"},
		{"/", PT, "/pt"},
		{"/pt", EN, "/"},
		{"/pt", ES, "/es"},
		{"about", PT, "/pt/about"}, // missing leading slash is tolerated
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LocalizedPath(tt.path, tt.loc),
			"LocalizedPath(%q, %q)", tt.path, tt.loc)
	}
}

func TestRemoveLocaleFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/pt/blog", "/blog"},
		{"/es/blog", "/blog"},
		{"/pt", "/"},
		{"/es", "/"},
		{"/blog", "/blog"},
		{"/", "/"},
		// Only whole segments count as prefixes.
		{"/portugal", "/portugal"},
		{"/especial", "/especial"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RemoveLocaleFromPath(tt.path), "path %q", tt.path)
	}
}

func TestLocaleFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Locale
	}{
		{"/pt/blog", PT},
		{"/es", ES},
		{"/blog", EN},
		{"/", EN},
		{"/portugal", EN},
		{"/fr/blog", EN}, // unsupported prefix reads as default-locale content
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LocaleFromPath(tt.path), "path %q", tt.path)
	}
}

func TestTranslatePath(t *testing.T) {
	installTestPathTable(t)

	tests := []struct {
		name string
		path string
		loc  Locale
		want string
	}{
		{"pt slug to en", "/pt/face-moderna", EN, "/modern-face"},
		{"pt slug to es keeps pt vocabulary via table", "/pt/face-moderna", ES, "/es/face-moderna"},
		{"en slug to pt", "/modern-face", PT, "/pt/face-moderna"},
		{"nested slug to es", "/modern-face/what-is-it", ES, "/es/face-moderna/que-es"},
		{"shared slug gets prefixed", "/blog", PT, "/pt/blog"},
		{"glossary es", "/pt/glossario", ES, "/es/glosario"},
		{"trailing slash ignored", "/pt/face-moderna/", EN, "/modern-face"},
		{"root to pt", "/", PT, "/pt"},
		{"root to en", "/pt", EN, "/"},
		{"identity", "/modern-face", EN, "/modern-face"},
		// Paths outside the table fall back to prefix adjustment.
		{"fallback to pt", "/press-kit", PT, "/pt/press-kit"},
		{"fallback strips prefix", "/pt/imprensa", EN, "/imprensa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslatePath(tt.path, tt.loc))
		})
	}
}

// Translating any canonical slug through an intermediate locale must land on
// the same URL as translating it directly.
func TestTranslatePathRoundTrip(t *testing.T) {
	installTestPathTable(t)

	for key, slugs := range testPathTable() {
		for _, src := range Locales {
			start := LocalizedPath(slugs[src], src)

			for _, via := range Locales {
				for _, dst := range Locales {
					direct := TranslatePath(start, dst)
					indirect := TranslatePath(TranslatePath(start, via), dst)

					assert.Equal(t, direct, indirect,
						"key %s: %s via %s to %s", key, start, via, dst)
				}
			}
		}
	}
}

func TestAlternateURLs(t *testing.T) {
	installTestPathTable(t)

	alternates := AlternateURLs("/pt/face-moderna", "https://example.org")

	require.Len(t, alternates, len(Locales))

	byLocale := make(map[Locale]Alternate, len(alternates))
	for _, alt := range alternates {
		byLocale[alt.Locale] = alt
	}

	assert.Equal(t, "https://example.org/modern-face", byLocale[EN].URL)
	assert.Equal(t, "https://example.org/pt/face-moderna", byLocale[PT].URL)
	assert.Equal(t, "https://example.org/es/face-moderna", byLocale[ES].URL)

	assert.Equal(t, "en", byLocale[EN].Hreflang)
	assert.Equal(t, "pt-BR", byLocale[PT].Hreflang)
	assert.Equal(t, "es", byLocale[ES].Hreflang)
}

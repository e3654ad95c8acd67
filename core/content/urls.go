// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"codeberg.org/visagefe/visagefe/i18n"
)

// PostURL returns the site-relative URL of a post, e.g. "/pt/blog/endomidface".
func PostURL(loc i18n.Locale, slug string) string {
	return loc.Prefix() + "/blog/" + slug
}

// IndexURL returns the blog index URL for a locale.
func IndexURL(loc i18n.Locale) string {
	return i18n.TranslatePath("/blog", loc)
}

// CategoryURL returns the URL of a category listing page.
func CategoryURL(loc i18n.Locale, categorySlug string) string {
	return loc.Prefix() + "/blog/category/" + categorySlug
}

var (
	nonSlugChars = regexp.MustCompile(`[^\w-]`)

	// Strips combining marks so "Técnicas" slugs to "tecnicas".
	deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify converts a display name into a URL segment: accents folded,
// lowercased, spaces become hyphens, everything outside word characters
// and hyphens is dropped.
func Slugify(name string) string {
	folded, _, err := transform.String(deaccenter, name)
	if err != nil {
		folded = name
	}

	s := strings.ToLower(folded)
	s = strings.Join(strings.Fields(s), "-")

	return nonSlugChars.ReplaceAllString(s, "")
}

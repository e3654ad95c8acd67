// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"fmt"
	"strings"
)

// pathTable is the forward canonical table: key -> one slug per locale.
// Slugs are stored without locale prefixes and without trailing slashes.
//
// pathIndex is the reverse index derived from it: normalized slug -> key.
// Both are populated once by Setup (or setPathTable in tests) and read-only
// afterwards.
var (
	pathTable map[string]map[Locale]string
	pathIndex map[string]string
)

// Alternate is one hreflang entry for a page.
type Alternate struct {
	Locale   Locale
	URL      string
	Hreflang string
}

// setPathTable installs the canonical path table after validating it:
// every key must carry a slug for every supported locale, and every slug
// must be an absolute path.
func setPathTable(table map[string]map[Locale]string) error {
	index := make(map[string]string, len(table)*len(Locales))

	for key, slugs := range table {
		for _, loc := range Locales {
			slug, ok := slugs[loc]
			if !ok || slug == "" {
				return fmt.Errorf("path table: key %q is missing a slug for locale %q", key, loc)
			}

			if !strings.HasPrefix(slug, "/") {
				return fmt.Errorf("path table: key %q has a relative slug %q for locale %q", key, slug, loc)
			}

			normalized := normalizePath(slug)

			if other, dup := index[normalized]; dup && other != key {
				return fmt.Errorf("path table: slug %q is claimed by both %q and %q", normalized, other, key)
			}

			index[normalized] = key
		}
	}

	pathTable = table
	pathIndex = index

	return nil
}

// normalizePath strips any locale prefix and trailing slash; an empty result
// becomes "/".
func normalizePath(path string) string {
	p := RemoveLocaleFromPath(path)

	p = strings.TrimSuffix(p, "/")
	if p == "" {
		p = "/"
	}

	return p
}

// LocalizedPath re-prefixes a path for the target locale without translating
// its vocabulary: any existing locale prefix is stripped, then the target
// locale's prefix is prepended. The default locale gets no prefix; the root
// maps to "/" for the default locale and to the bare prefix otherwise.
func LocalizedPath(path string, loc Locale) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	stripped := RemoveLocaleFromPath(path)

	if loc == DefaultLocale {
		return stripped
	}

	if stripped == "/" {
		return loc.Prefix()
	}

	return loc.Prefix() + stripped
}

// RemoveLocaleFromPath strips a leading non-default locale segment, including
// the bare "/pt" or "/es" root, which becomes "/". The default locale has no
// prefix to strip.
func RemoveLocaleFromPath(path string) string {
	for _, loc := range Locales {
		prefix := loc.Prefix()
		if prefix == "" {
			continue
		}

		if path == prefix {
			return "/"
		}

		if strings.HasPrefix(path, prefix+"/") {
			return strings.TrimPrefix(path, prefix)
		}
	}

	return path
}

// LocaleFromPath infers the locale from a URL path's first segment. An
// unrecognized first segment is default-locale content: the default locale is
// unprefixed, so "/about" is simply an English URL.
func LocaleFromPath(path string) Locale {
	segment := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(segment, '/'); i >= 0 {
		segment = segment[:i]
	}

	for _, loc := range Locales {
		if loc != DefaultLocale && string(loc) == segment {
			return loc
		}
	}

	return DefaultLocale
}

// TranslatePath is the preferred way to translate a URL between locales.
//
// The input is normalized (locale prefix stripped, trailing slash stripped,
// empty becomes "/") and looked up against the reverse canonical index. On a
// hit, the target locale's slug for the key is returned with the proper
// prefix. On a miss, TranslatePath falls back to LocalizedPath: the prefix is
// adjusted but the slug keeps its source-language vocabulary. The fallback is
// deliberate; page generation must never fail over a missing table entry.
func TranslatePath(path string, loc Locale) string {
	normalized := normalizePath(path)

	if key, ok := pathIndex[normalized]; ok {
		if slug, ok := pathTable[key][loc]; ok {
			return LocalizedPath(slug, loc)
		}
	}

	return LocalizedPath(path, loc)
}

// AlternateURLs produces one hreflang entry per supported locale for the
// given page, translating the current path into each locale. siteURL is the
// public origin without a trailing slash.
func AlternateURLs(currentPath, siteURL string) []Alternate {
	alternates := make([]Alternate, 0, len(Locales))

	for _, loc := range Locales {
		alternates = append(alternates, Alternate{
			Locale:   loc,
			URL:      siteURL + TranslatePath(currentPath, loc),
			Hreflang: loc.Hreflang(),
		})
	}

	return alternates
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n owns everything locale-shaped: the closed registry of supported
locales, locale-prefixed URL handling, canonical path translation, the
per-locale navigation and footer link trees, and gettext-backed UI string
translation.

# Locales and URL prefixes

The site supports a fixed set of locales (en, pt, es). The default locale (en)
is served unprefixed; every other locale lives under a /<locale> URL prefix:

	/modern-face        -> en
	/pt/face-moderna    -> pt
	/es/face-moderna    -> es

Any first path segment that is not a known locale code is default-locale
content. This is not an error path: the default locale is unprefixed, so
"/about" simply is an English URL.

# Canonical path translation

Logical pages are identified by a canonical key ("modern-face-root"). The
embedded path table maps each key to one slug per locale. TranslatePath
resolves a concrete URL back to its key via a reverse index and re-emits the
target locale's slug. On a lookup miss it degrades to mechanical prefix
swapping via LocalizedPath so that page generation never fails; untabulated
pages then keep their source-language slug with only the prefix adjusted.

# UI strings

Use the original English UI text as the msgid; do not invent keys.

	i18n.Tr(ctx, "No results found")
	i18n.TrN(ctx, "{{.Count}} article found", "{{.Count}} articles found", n, "Count", n)

Missing translations return the msgid unchanged, or visibly wrapped as
"⟦...⟧" when strict mode is enabled in the configuration.
*/
package i18n

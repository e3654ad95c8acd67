// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package content loads and serves the site's markdown blog content.

Posts live under content/blog/<locale>/<slug>.md with YAML frontmatter.
Translations of the same article carry a shared canonicalSlug, which drives
hreflang alternates and cross-locale linking. The whole corpus is loaded and
validated up front; a malformed post is a startup error rather than a page
that silently renders wrong.

Draft posts are loaded but excluded from every public accessor. They are only
reachable through the draft lookup used by the preview route.
*/
package content

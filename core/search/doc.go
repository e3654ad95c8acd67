// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package search implements the shared mechanics behind the site's interactive
search and filter surfaces: the blog search box, the glossary's combined
text, letter and category filters, and their load-more pagination.

The pieces compose rather than prescribe a pipeline. A Debouncer coalesces
keystrokes into one query; Filter narrows an item set by a free-text query
over chosen fields; predicates combine by intersection; a Session tracks
whether a query is active and holds the current result set; a Pager exposes
an initial window that grows step by step.
*/
package search

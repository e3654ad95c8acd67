// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"
)

// NormalizeURL is a middleware that handles URL normalization by:
// 1. Removing trailing slashes from URLs (except root).
// 2. Redirecting an explicit /en/ prefix to the unprefixed canonical path.
//
// English content lives at unprefixed paths, so /en/blog and /blog would
// otherwise serve duplicate pages.
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if hasEnPrefix(r) {
		removeEnPrefix(w, r)

		return
	}

	if hasTrailingSlash(r) {
		removeTrailingSlash(w, r)

		return
	}

	next.ServeHTTP(w, r)
}

// hasTrailingSlash checks if a request path has a trailing slash (except root).
func hasTrailingSlash(r *http.Request) bool {
	return r.URL.Path != "/" && strings.HasSuffix(r.URL.Path, "/")
}

// removeTrailingSlash removes trailing slash and redirects.
func removeTrailingSlash(w http.ResponseWriter, r *http.Request) {
	url := r.URL

	if len(url.Path) > 1 {
		url.Path = strings.TrimSuffix(url.Path, "/")
	}

	http.Redirect(w, r, url.String(), http.StatusPermanentRedirect)
}

func hasEnPrefix(r *http.Request) bool {
	return r.URL.Path == "/en" || strings.HasPrefix(r.URL.Path, "/en/")
}

// removeEnPrefix redirects /en and /en/* to the unprefixed equivalent.
func removeEnPrefix(w http.ResponseWriter, r *http.Request) {
	target := *r.URL

	target.Path = strings.TrimPrefix(target.Path, "/en")
	if target.Path == "" {
		target.Path = "/"
	}

	http.Redirect(w, r, target.String(), http.StatusMovedPermanently)
}

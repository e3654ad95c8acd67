// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"fmt"
	"maps"
	"net/http"
	"strings"

	"codeberg.org/visagefe/visagefe/config"
)

var (
	// baseHeaders defines the default headers to be set in responses.
	//
	// NOTE: we intentionally don't set CORP or HSTS headers.
	baseHeaders = http.Header{
		"Referrer-Policy":         {"strict-origin-when-cross-origin"},
		"X-Frame-Options":         {"DENY"},
		"X-Content-Type-Options":  {"nosniff"},
		"Permissions-Policy":      {strings.Join(defaultPermissionsPolicy, ", ")},
		"Content-Security-Policy": {strings.Join(cspDirectives, "; ") + ";"},
	}

	// The site serves its own markup, styles, scripts and images; nothing is
	// loaded cross-origin.
	cspDirectives = []string{
		"base-uri 'self'",
		"default-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"script-src 'self'",
		"img-src 'self' data:",
		"font-src 'self'",
		"connect-src 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}

	// defaultPermissionsPolicy defines the default Permissions-Policy header.
	defaultPermissionsPolicy = []string{
		"accelerometer=()",
		"camera=()",
		"display-capture=()",
		"geolocation=()",
		"gyroscope=()",
		"magnetometer=()",
		"microphone=()",
		"midi=()",
		"payment=()",
		"usb=()",
		"web-share=()",
	}
)

// SetResponseHeaders adds default headers to HTTP responses.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	if config.Global.Development.InDevelopment {
		invalidateCacheInDevelopment(headers)
	}

	setCacheControl(headers, r.URL.Path)

	next.ServeHTTP(w, r)
}

// for `invalidateCacheInDevelopment`
var firstDevResponse = true

// clear cache in development
func invalidateCacheInDevelopment(headers http.Header) {
	if firstDevResponse {
		firstDevResponse = false

		headers.Set("Clear-Site-Data", "cache")
	}
}

// setCacheControl sets cache control headers by path class.
//
// Pages follow the configured HTTPCache windows; static assets get fixed
// longer windows since their content changes only on deployment.
func setCacheControl(headers http.Header, path string) {
	// Rendered pages: configured shared cache window with stale-while-revalidate.
	cacheDuration := fmt.Sprintf(
		"public, max-age=%.0f, stale-while-revalidate=%.0f",
		config.Global.HTTPCache.MaxAge.Seconds(),
		config.Global.HTTPCache.StaleWhileRevalidate.Seconds(),
	)

	// Fonts can be cached for a month.
	if strings.HasPrefix(path, "/fonts/") {
		cacheDuration = "max-age=2592000"
	}

	// JavaScript and CSS get a week.
	if strings.HasPrefix(path, "/js/") || strings.HasPrefix(path, "/css/") {
		cacheDuration = "max-age=604800"
	}

	// Images can be cached for 2 weeks.
	if strings.HasPrefix(path, "/img/") {
		cacheDuration = "max-age=1209600"
	}

	// robots.txt and manifest-style files get a day.
	if strings.HasSuffix(path, ".txt") || strings.HasSuffix(path, ".json") {
		cacheDuration = "max-age=86400"
	}

	headers.Set("Cache-Control", cacheDuration)
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	// Default HTTP cache max age in seconds.
	defaultHTTPCacheMaxAgeSeconds = 300
	// Default HTTP cache stale while revalidate in seconds.
	defaultHTTPCacheStaleWhileRevalidateSeconds = 600

	// Default preview token lifetime.
	defaultPreviewTTL = 72 * time.Hour

	// Default search API limiter settings.
	defaultLimiterRPS   = 5
	defaultLimiterBurst = 20
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8484"

	cfg.Site.RawURL = "http://localhost:8484"
	cfg.Site.Name = "Modern Face Institute"

	cfg.Preview.TTL = defaultPreviewTTL

	cfg.HTTPCache.MaxAge = defaultHTTPCacheMaxAgeSeconds * time.Second
	cfg.HTTPCache.StaleWhileRevalidate = defaultHTTPCacheStaleWhileRevalidateSeconds * time.Second

	cfg.Limiter.Enabled = true
	cfg.Limiter.RPS = defaultLimiterRPS
	cfg.Limiter.Burst = defaultLimiterBurst

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Internationalization.StrictMissingKeys = false
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/server/utils"
)

// validation errors.
var (
	errInvalidLogLevel      = errors.New("invalid Log.Level value")
	errInvalidLogFormat     = errors.New("invalid Log.Format value")
	errInvalidLimiterRPS    = errors.New("Limiter.RPS must be positive when the limiter is enabled")
	errInvalidLimiterBurst  = errors.New("Limiter.Burst must be positive when the limiter is enabled")
	errInvalidPreviewSecret = errors.New("Preview.Secret must be 64 hex characters (a 32-byte v4.local key)")
	errInvalidPreviewTTL    = errors.New("Preview.TTL must be positive")
)

var previewSecretRegexp = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// validateAndSet validates the server configuration and populates derived fields.
func (cfg *ServerConfig) validateAndSet() error {
	if cfg.Basic.Host == "" {
		cfg.Basic.Host = "localhost"
		log.Info().
			Str("host", cfg.Basic.Host).
			Msg("Binding to default host")
	}

	if cfg.Basic.Port == "" {
		cfg.Basic.Port = "8484"
		log.Info().
			Str("port", cfg.Basic.Port).
			Msg("Using default port")
	}

	// Validate the public site URL; hreflang alternates need a real origin.
	siteURL, err := utils.ParseURL(cfg.Site.RawURL, "Site")
	if err != nil {
		return fmt.Errorf("invalid site URL: %w", err)
	}

	cfg.Site.RawURL = siteURL.String()

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return errInvalidLogLevel
	}

	switch cfg.Log.Format {
	case "", "console", "json":
		// valid
	default:
		return errInvalidLogFormat
	}

	if cfg.Limiter.Enabled {
		if cfg.Limiter.RPS <= 0 {
			return errInvalidLimiterRPS
		}

		if cfg.Limiter.Burst <= 0 {
			return errInvalidLimiterBurst
		}
	}

	// An empty preview secret is allowed; package preview generates an
	// ephemeral key and preview links stop working across restarts.
	if cfg.Preview.Secret != "" && !previewSecretRegexp.MatchString(cfg.Preview.Secret) {
		return errInvalidPreviewSecret
	}

	if cfg.Preview.TTL <= 0 {
		return errInvalidPreviewTTL
	}

	return nil
}

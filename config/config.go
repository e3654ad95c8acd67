// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Basic struct {
		Host string `env:"VISAGEFE_HOST,overwrite" yaml:"host"`
		Port string `env:"VISAGEFE_PORT,overwrite" yaml:"port"`
	} `yaml:"basic"`

	Site struct {
		// URL is the public origin used for absolute links and hreflang alternates.
		RawURL string `env:"VISAGEFE_SITE_URL,overwrite" yaml:"url"`
		Name   string `env:"VISAGEFE_SITE_NAME,overwrite" yaml:"name"`
	} `yaml:"site"`

	Content struct {
		// Dir optionally overrides the embedded content with a directory on disk.
		Dir string `env:"VISAGEFE_CONTENT_DIR" yaml:"dir"`
		// Watch enables fsnotify reloads of Dir. Only meaningful when Dir is set.
		Watch bool `env:"VISAGEFE_CONTENT_WATCH" yaml:"watch"`
	} `yaml:"content"`

	Preview struct {
		// raw hex of a v4.local symmetric key for draft preview tokens
		Secret string        `env:"VISAGEFE_PREVIEW_SECRET" yaml:"secret"`
		TTL    time.Duration `env:"VISAGEFE_PREVIEW_TTL,overwrite" yaml:"ttl"`
	} `yaml:"preview"`

	HTTPCache struct {
		MaxAge               time.Duration `env:"VISAGEFE_CACHE_CONTROL_MAX_AGE,overwrite" yaml:"cacheControlMaxAge"`
		StaleWhileRevalidate time.Duration `env:"VISAGEFE_CACHE_CONTROL_STALE_WHILE_REVALIDATE,overwrite" yaml:"cacheControlStaleWhileRevalidate"`
	} `yaml:"httpCache"`

	Limiter struct {
		Enabled bool    `env:"VISAGEFE_LIMITER,overwrite" yaml:"enabled"`
		RPS     float64 `env:"VISAGEFE_LIMITER_RPS,overwrite" yaml:"rps"`
		Burst   int     `env:"VISAGEFE_LIMITER_BURST,overwrite" yaml:"burst"`
	} `yaml:"limiter"`

	Development struct {
		InDevelopment bool `env:"VISAGEFE_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"VISAGEFE_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"VISAGEFE_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"VISAGEFE_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`

	Internationalization struct {
		// Strict mode for missing keys.
		//
		// When enabled, missing keys are logged (deduplicated per locale+key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"VISAGEFE_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
	} `yaml:"i18n"`
}

// LoadConfig loads the configuration from various sources.
//
// Precedence, highest first: command-line flag, environment variable,
// YAML file, built-in defaults.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	switch {
	case configFlagUserSet:
		configFilePath = parsedConfigFlagValue
	case os.Getenv("VISAGEFE_CONFIGFILE") != "":
		configFilePath = os.Getenv("VISAGEFE_CONFIGFILE")
	default:
		configFilePath = parsedConfigFlagValue
		// Fallback check for "./config.yml".
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	return nil
}

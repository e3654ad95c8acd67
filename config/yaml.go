// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

// readYAML overlays the YAML file at path onto cfg. An empty path or a
// missing file leaves cfg untouched; env vars and flags still apply later.
func (cfg *ServerConfig) readYAML(path string) error {
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- operator-supplied config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info().
				Str("path", path).
				Msg("No YAML configuration file, continuing with defaults")

			return nil
		}

		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Msg("Loaded YAML configuration")

	return nil
}

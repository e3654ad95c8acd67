// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/goccy/go-yaml"
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/server/assets"
)

var (
	// poDomain is the gettext domain to load under each locale.
	poDomain = "visagefe"

	// catalogs maps each non-default locale to its loaded gotext catalogue.
	// The default locale has no catalogue: msgids are its UI strings.
	catalogs map[Locale]*gotext.Locale
)

// Setup initialises package i18n from embedded assets. It loads the gettext
// catalogues for the non-default locales and the canonical path table that
// backs [TranslatePath].
//
// The expected asset layout is:
//
//	po/<locale>.po       one catalogue per non-default locale, e.g. po/pt.po
//	data/paths.yaml      canonical key to per-locale slug table
//
// The default locale needs no .po file; source msgids are its UI strings. A
// missing catalogue for a supported locale is an error, since that locale's
// pages would silently render in English.
//
// Calling Setup again replaces the previously loaded state.
func Setup() error {
	Logger = log.With().Str("sys", "i18n").Logger()

	catalogs = make(map[Locale]*gotext.Locale)

	for _, loc := range Locales {
		if loc == DefaultLocale {
			continue
		}

		fileName := path.Join("po", string(loc)+".po")

		if _, err := fs.Stat(assets.FS, fileName); err != nil {
			return fmt.Errorf("missing catalogue for locale %q: %w", loc, err)
		}

		po := gotext.NewPoFS(assets.FS)
		po.ParseFile(fileName)

		catalog := gotext.NewLocale("", loc.HTMLLang()) // Base path is unused when manually adding translators.
		catalog.AddTranslator(poDomain, po)

		catalogs[loc] = catalog

		Logger.Info().
			Str("locale", string(loc)).
			Str("domain", poDomain).
			Msg("Loaded locale")
	}

	if err := loadPathTable(); err != nil {
		return err
	}

	return nil
}

// loadPathTable reads data/paths.yaml and installs it as the canonical
// translation table. The file maps stable keys to per-locale slugs:
//
//	modern-face-root:
//	  en: /modern-face
//	  pt: /face-moderna
//	  es: /face-moderna
func loadPathTable() error {
	file, err := assets.FS.Open("data/paths.yaml")
	if err != nil {
		return fmt.Errorf("failed to open path table: %w", err)
	}
	defer file.Close()

	var table map[string]map[Locale]string
	if err := yaml.NewDecoder(file).Decode(&table); err != nil {
		return fmt.Errorf("failed to decode path table: %w", err)
	}

	if err := setPathTable(table); err != nil {
		return fmt.Errorf("invalid path table: %w", err)
	}

	Logger.Info().Int("keys", len(table)).Msg("Loaded path table")

	return nil
}

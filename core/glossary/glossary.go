// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package glossary serves the per-locale glossary of facial surgery terms.

Each locale's terms live in an embedded YAML file. A small set of featured
terms gets editorial treatment with imagery and benefit lists; the general
terms render as an alphabetical dictionary. The index letter of a general
term is derived from the term itself rather than stored, so the data file
cannot drift out of step with its own alphabet.
*/
package glossary

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/assets"
)

// FeaturedTerm is an editorially curated glossary entry.
type FeaturedTerm struct {
	Term        string   `yaml:"term" json:"term"`
	Category    string   `yaml:"category" json:"category"`
	Subcategory string   `yaml:"subcategory" json:"subcategory"`
	Image       string   `yaml:"image" json:"image,omitempty"`
	Description string   `yaml:"description" json:"description"`
	Benefits    []string `yaml:"benefits" json:"benefits,omitempty"`
	Additional  string   `yaml:"additionalText" json:"additionalText,omitempty"`
}

// Term is one general glossary entry. Letter is filled at load time from the
// term's first rune.
type Term struct {
	Term        string `yaml:"term" json:"term"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link" json:"link"`
	LinkText    string `yaml:"linkText" json:"linkText"`
	Letter      string `yaml:"-" json:"letter"`
}

// Meta is the page-level metadata for one locale's glossary.
type Meta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// Content is one locale's complete glossary.
type Content struct {
	Meta          Meta           `yaml:"meta"`
	FeaturedTerms []FeaturedTerm `yaml:"featuredTerms"`
	GeneralTerms  []Term         `yaml:"generalTerms"`
}

var (
	mu        sync.RWMutex
	byLocale  map[i18n.Locale]*Content
	available bool
)

// Setup loads every locale's glossary from embedded assets under
// data/glossary/<locale>.yaml. Missing or malformed data is a startup error.
func Setup() error {
	return setupFrom(assets.FS)
}

func setupFrom(fsys fs.FS) error {
	logger := log.With().Str("sys", "glossary").Logger()

	loaded := make(map[i18n.Locale]*Content, len(i18n.Locales))

	for _, loc := range i18n.Locales {
		name := path.Join("data", "glossary", string(loc)+".yaml")

		file, err := fsys.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open glossary for locale %q: %w", loc, err)
		}

		var content Content
		err = yaml.NewDecoder(file).Decode(&content)

		file.Close()

		if err != nil {
			return fmt.Errorf("failed to decode glossary for locale %q: %w", loc, err)
		}

		if err := validate(&content); err != nil {
			return fmt.Errorf("glossary for locale %q: %w", loc, err)
		}

		for i := range content.GeneralTerms {
			content.GeneralTerms[i].Letter = indexLetter(content.GeneralTerms[i].Term)
		}

		sort.SliceStable(content.GeneralTerms, func(i, j int) bool {
			return content.GeneralTerms[i].Term < content.GeneralTerms[j].Term
		})

		loaded[loc] = &content

		logger.Info().
			Str("locale", string(loc)).
			Int("featured", len(content.FeaturedTerms)).
			Int("general", len(content.GeneralTerms)).
			Msg("Loaded glossary")
	}

	mu.Lock()
	byLocale = loaded
	available = true
	mu.Unlock()

	return nil
}

func validate(content *Content) error {
	for _, term := range content.FeaturedTerms {
		if term.Term == "" || term.Description == "" {
			return fmt.Errorf("featured term %q is missing term or description", term.Term)
		}
	}

	for _, term := range content.GeneralTerms {
		if term.Term == "" || term.Description == "" {
			return fmt.Errorf("general term %q is missing term or description", term.Term)
		}
	}

	return nil
}

// indexLetter derives the alphabet index letter from a term's first rune.
func indexLetter(term string) string {
	for _, r := range strings.TrimSpace(term) {
		return string(unicode.ToUpper(r))
	}

	return ""
}

// ForLocale returns the glossary for loc, falling back to the default locale.
// It returns nil before Setup has run.
func ForLocale(loc i18n.Locale) *Content {
	mu.RLock()
	defer mu.RUnlock()

	if !available {
		return nil
	}

	if content, ok := byLocale[loc]; ok {
		return content
	}

	return byLocale[i18n.DefaultLocale]
}

// Letters returns the sorted set of index letters present in the locale's
// general terms, for rendering the alphabet filter.
func Letters(loc i18n.Locale) []string {
	content := ForLocale(loc)
	if content == nil {
		return nil
	}

	seen := make(map[string]bool)

	var letters []string

	for _, term := range content.GeneralTerms {
		if !seen[term.Letter] {
			seen[term.Letter] = true

			letters = append(letters, term.Letter)
		}
	}

	sort.Strings(letters)

	return letters
}

// TermsByLetter returns the locale's general terms starting with letter.
// An empty letter returns all terms.
func TermsByLetter(loc i18n.Locale, letter string) []Term {
	content := ForLocale(loc)
	if content == nil {
		return nil
	}

	if letter == "" {
		return content.GeneralTerms
	}

	letter = strings.ToUpper(letter)

	var matched []Term

	for _, term := range content.GeneralTerms {
		if term.Letter == letter {
			matched = append(matched, term)
		}
	}

	return matched
}

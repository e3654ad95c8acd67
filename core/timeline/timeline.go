// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package timeline serves the facial surgery history timeline.

Events are loaded once from an embedded YAML file and filtered server-side
for the interactive timeline page: by category, by critical-milestone flag,
and by free-text query over every textual field. The event corpus exists
only in Portuguese.
*/
package timeline

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/core/search"
	"codeberg.org/visagefe/visagefe/server/assets"
)

// CategoryAll is the pseudo-category that matches every event.
const CategoryAll = "Todos"

// Event is one timeline entry. Critical is empty for ordinary events and
// carries a short label for critical milestones.
type Event struct {
	ID           string   `yaml:"id" json:"id"`
	Year         int      `yaml:"year" json:"year"`
	DisplayYear  string   `yaml:"displayYear" json:"displayYear"`
	Title        string   `yaml:"title" json:"title"`
	Category     string   `yaml:"category" json:"category"`
	WhyItMatters string   `yaml:"whyItMatters" json:"whyItMatters"`
	Details      []string `yaml:"details" json:"details"`
	Critical     string   `yaml:"critical" json:"critical,omitempty"`
}

// Filter selects events for the timeline page.
type Filter struct {
	Query        string
	Category     string
	OnlyCritical bool
}

var (
	mu     sync.RWMutex
	events []Event
)

// Setup loads the timeline from embedded assets. Events are validated and
// sorted chronologically.
func Setup() error {
	raw, err := assets.FS.ReadFile("data/timeline.yaml")
	if err != nil {
		return fmt.Errorf("failed to read timeline data: %w", err)
	}

	return setupFrom(raw)
}

func setupFrom(raw []byte) error {
	var data struct {
		Events []Event `yaml:"events"`
	}

	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to decode timeline data: %w", err)
	}

	seen := make(map[string]bool, len(data.Events))

	for _, ev := range data.Events {
		if ev.ID == "" || ev.Title == "" || ev.Category == "" {
			return fmt.Errorf("timeline event %q is missing id, title or category", ev.ID)
		}

		if seen[ev.ID] {
			return fmt.Errorf("duplicate timeline event id %q", ev.ID)
		}

		seen[ev.ID] = true
	}

	sort.SliceStable(data.Events, func(i, j int) bool {
		return data.Events[i].Year < data.Events[j].Year
	})

	mu.Lock()
	events = data.Events
	mu.Unlock()

	tl := log.With().Str("sys", "timeline").Logger()
	tl.Info().Int("events", len(data.Events)).Msg("Loaded timeline")

	return nil
}

// Events returns every event in chronological order.
func Events() []Event {
	mu.RLock()
	defer mu.RUnlock()

	return events
}

// Categories returns the category filter options, CategoryAll first, the
// rest in chronological first-appearance order.
func Categories() []string {
	categories := []string{CategoryAll}
	seen := map[string]bool{}

	for _, ev := range Events() {
		if !seen[ev.Category] {
			seen[ev.Category] = true

			categories = append(categories, ev.Category)
		}
	}

	return categories
}

// Apply returns the events matching f, in chronological order. The query is
// a case-insensitive substring match over display year, title, category,
// rationale and details. Queries below search.MinQueryLen do not narrow,
// same as the other search surfaces.
func Apply(f Filter) []Event {
	query := ""
	if search.Active(f.Query) {
		query = search.Normalize(f.Query)
	}

	var matched []Event

	for _, ev := range Events() {
		if f.Category != "" && f.Category != CategoryAll && ev.Category != f.Category {
			continue
		}

		if f.OnlyCritical && ev.Critical == "" {
			continue
		}

		if query != "" && !strings.Contains(haystack(ev), query) {
			continue
		}

		matched = append(matched, ev)
	}

	return matched
}

func haystack(ev Event) string {
	parts := []string{ev.DisplayYear, ev.Title, ev.Category, ev.WhyItMatters}
	parts = append(parts, ev.Details...)

	return strings.ToLower(strings.Join(parts, " "))
}

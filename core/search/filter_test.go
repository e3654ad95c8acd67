// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Term        string
	Description string
	Category    string
	Letter      string
}

var entries = []entry{
	{"SMAS", "Superficial musculoaponeurotic system.", "Anatomia", "S"},
	{"Endomidface", "Midface rejuvenation under direct vision.", "Técnica", "E"},
	{"Platisma", "Superficial neck muscle.", "Anatomia", "P"},
	{"Browlift", "Eyebrow repositioning technique.", "Técnica", "B"},
}

func entryFields(e entry) []string {
	return []string{e.Term, e.Description, e.Category}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "smas", Normalize("  SMAS "))
	assert.Equal(t, "", Normalize("   "))
}

func TestActive(t *testing.T) {
	assert.False(t, Active(""))
	assert.False(t, Active("s"))
	assert.False(t, Active(" s "))
	assert.True(t, Active("sm"))
	assert.True(t, Active("smas"))
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(entries, "smas", entryFields)
	require.Len(t, got, 1)
	assert.Equal(t, "SMAS", got[0].Term)

	// Substring match across any field.
	got = Filter(entries, "superficial", entryFields)
	require.Len(t, got, 2)

	got = Filter(entries, "TÉCNICA", entryFields)
	require.Len(t, got, 2)
}

func TestFilterShortQueryReturnsAll(t *testing.T) {
	assert.Len(t, Filter(entries, "", entryFields), len(entries))
	assert.Len(t, Filter(entries, "s", entryFields), len(entries))
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, Filter(entries, "rhinoplasty", entryFields))
}

func TestSelectComposesByIntersection(t *testing.T) {
	query := QueryPredicate("superficial", entryFields)
	anatomia := func(e entry) bool { return e.Category == "Anatomia" }

	// Query alone matches SMAS and Platisma; category alone matches the
	// same two; letter P narrows the intersection to Platisma.
	got := Select(entries, query, anatomia, LetterPredicate("p", func(e entry) string { return e.Letter }))
	require.Len(t, got, 1)
	assert.Equal(t, "Platisma", got[0].Term)
}

func TestSelectEmptyDimensionsPassEverything(t *testing.T) {
	got := Select(entries,
		QueryPredicate("", entryFields),
		LetterPredicate("", func(e entry) string { return e.Letter }),
	)
	assert.Len(t, got, len(entries))
}

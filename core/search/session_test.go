// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionItems(n int) []entry {
	items := make([]entry, 0, n)
	for range n {
		items = append(items, entry{Term: "SMAS", Description: "d", Category: "Anatomia", Letter: "S"})
	}

	return items
}

func TestSessionStartsInactiveWithAllItems(t *testing.T) {
	var notified [][]entry

	s := NewSession(entries, entryFields, func(results []entry) {
		notified = append(notified, results)
	})

	assert.False(t, s.Active())
	assert.Len(t, s.Results(), len(entries))

	// The subscriber sees the initial full set.
	require.Len(t, notified, 1)
	assert.Len(t, notified[0], len(entries))
}

func TestSessionQueryLifecycle(t *testing.T) {
	var last []entry

	s := NewSession(entries, entryFields, func(results []entry) {
		last = results
	})

	s.SetQuery("smas")
	assert.True(t, s.Active())
	require.Len(t, s.Results(), 1)
	assert.Len(t, last, 1)

	// Below the minimum length the session falls back to all items.
	s.SetQuery("s")
	assert.False(t, s.Active())
	assert.Len(t, s.Results(), len(entries))
	assert.Len(t, last, len(entries))

	s.SetQuery("endo")
	require.Len(t, s.Results(), 1)

	s.Clear()
	assert.False(t, s.Active())
	assert.Len(t, s.Results(), len(entries))
}

func TestSessionCappedKeepsFullSetForSubscriber(t *testing.T) {
	items := sessionItems(DisplayCap + 5)

	var last []entry

	s := NewSession(items, entryFields, func(results []entry) {
		last = results
	})

	s.SetQuery("smas")

	// The dropdown shows at most DisplayCap, but the subscriber and Count
	// see everything.
	assert.Len(t, s.Capped(), DisplayCap)
	assert.Equal(t, DisplayCap+5, s.Count())
	assert.Len(t, last, DisplayCap+5)
}

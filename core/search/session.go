// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package search

import "sync"

// DisplayCap is the number of results the dropdown shows. Subscribers still
// receive the full set, so the grid below the search box can render all of
// it while the dropdown stays short.
const DisplayCap = 8

// Session tracks one search surface's state: the settled query, whether it
// is active, and the current results. It is the server-side counterpart of
// the search box plus its results dropdown.
//
// All items are the "no query" result set; an inactive query falls back to
// them, so clearing the search restores the full listing.
type Session[T any] struct {
	mu sync.Mutex

	all       []T
	query     string
	results   []T
	fields    func(T) []string
	onResults func([]T)
}

// NewSession returns a session over items, matching the query against the
// given fields. onResults, if non-nil, is called with the full result set
// after every query change. The initial state is inactive with all items as
// results.
func NewSession[T any](items []T, fields func(T) []string, onResults func([]T)) *Session[T] {
	s := &Session[T]{
		all:       items,
		results:   items,
		fields:    fields,
		onResults: onResults,
	}

	if onResults != nil {
		onResults(items)
	}

	return s
}

// SetQuery installs a settled query, recomputes results, and notifies the
// subscriber. It is typically wired as a Debouncer's delivery function.
func (s *Session[T]) SetQuery(query string) {
	s.mu.Lock()

	s.query = query

	if Active(query) {
		s.results = Filter(s.all, query, s.fields)
	} else {
		s.results = s.all
	}

	results := s.results
	notify := s.onResults

	s.mu.Unlock()

	if notify != nil {
		notify(results)
	}
}

// Clear resets the session to its inactive state.
func (s *Session[T]) Clear() {
	s.SetQuery("")
}

// Active reports whether the current query is long enough to filter.
func (s *Session[T]) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Active(s.query)
}

// Results returns the full current result set.
func (s *Session[T]) Results() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.results
}

// Capped returns at most DisplayCap results for the dropdown.
func (s *Session[T]) Capped() []T {
	results := s.Results()
	if len(results) > DisplayCap {
		return results[:DisplayCap]
	}

	return results
}

// Count returns the number of results in the full set.
func (s *Session[T]) Count() int {
	return len(s.Results())
}

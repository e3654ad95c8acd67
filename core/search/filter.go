// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package search

import "strings"

// MinQueryLen is the minimum number of characters, after trimming, before a
// query narrows anything. Shorter queries are treated as "no query".
const MinQueryLen = 2

// Normalize lowercases and trims a raw query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Active reports whether query is long enough to filter.
func Active(query string) bool {
	return len([]rune(Normalize(query))) >= MinQueryLen
}

// Filter returns the items whose fields contain the query as a
// case-insensitive substring. Any field matching suffices for an item. An
// inactive query returns items unchanged, sharing the backing array.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if !Active(query) {
		return items
	}

	term := Normalize(query)

	var matched []T

	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				matched = append(matched, item)

				break
			}
		}
	}

	return matched
}

// Predicate is one filter dimension over an item.
type Predicate[T any] func(T) bool

// Select returns the items satisfying every predicate. Filters compose by
// intersection: an item must pass the text query and the letter filter and
// the category filter to stay in.
func Select[T any](items []T, predicates ...Predicate[T]) []T {
	var matched []T

	for _, item := range items {
		ok := true

		for _, p := range predicates {
			if !p(item) {
				ok = false

				break
			}
		}

		if ok {
			matched = append(matched, item)
		}
	}

	return matched
}

// QueryPredicate adapts a text query into a Predicate. An inactive query
// passes everything.
func QueryPredicate[T any](query string, fields func(T) []string) Predicate[T] {
	if !Active(query) {
		return func(T) bool { return true }
	}

	term := Normalize(query)

	return func(item T) bool {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}

		return false
	}
}

// LetterPredicate passes items whose letter equals the selected one. An
// empty selection passes everything.
func LetterPredicate[T any](letter string, letterOf func(T) string) Predicate[T] {
	if letter == "" {
		return func(T) bool { return true }
	}

	letter = strings.ToUpper(letter)

	return func(item T) bool {
		return strings.ToUpper(letterOf(item)) == letter
	}
}

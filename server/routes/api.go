// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"codeberg.org/visagefe/visagefe/core/content"
	"codeberg.org/visagefe/visagefe/core/glossary"
	"codeberg.org/visagefe/visagefe/core/search"
	"codeberg.org/visagefe/visagefe/core/timeline"
	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/utils"
)

type blogSearchResponse struct {
	Query string `json:"query"`
	// Count is the size of the full result set. Clients cap the dropdown at
	// search.DisplayCap but show Count in the "n results" line.
	Count   int               `json:"count"`
	Results []content.Article `json:"results"`
}

type glossarySearchResponse struct {
	Query   string          `json:"query"`
	Letter  string          `json:"letter"`
	Count   int             `json:"count"`
	Visible int             `json:"visible"`
	HasMore bool            `json:"hasMore"`
	Terms   []glossary.Term `json:"terms"`
}

type timelineResponse struct {
	Count  int              `json:"count"`
	Events []timeline.Event `json:"events"`
}

// BlogSearchAPI is the JSON endpoint behind the blog search box.
//
// Queries shorter than the minimum return the full article list, matching
// the behavior of an empty query.
func BlogSearchAPI(w http.ResponseWriter, r *http.Request) error {
	loc := i18n.LocaleFrom(r.Context())
	query := utils.GetQueryParam(r, "q")

	results := search.Filter(store.Articles(loc), query, func(a content.Article) []string {
		return []string{a.Title, a.Description, a.Category}
	})

	return writeJSON(w, blogSearchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	})
}

// GlossarySearchAPI is the JSON endpoint behind the glossary filter island.
//
// The letter and query filters compose; "visible" grows in page-size steps
// as the client requests more.
func GlossarySearchAPI(w http.ResponseWriter, r *http.Request) error {
	loc := i18n.LocaleFrom(r.Context())
	query := utils.GetQueryParam(r, "q")
	letter := utils.GetQueryParam(r, "letter")

	terms := search.Filter(glossary.TermsByLetter(loc, letter), query, func(t glossary.Term) []string {
		return []string{t.Term, t.Description}
	})

	visible := len(terms)
	if raw := utils.GetQueryParam(r, "visible"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "visible must be a non-negative integer", http.StatusBadRequest)

			return nil
		}

		visible = min(n, len(terms))
	}

	return writeJSON(w, glossarySearchResponse{
		Query:   query,
		Letter:  letter,
		Count:   len(terms),
		Visible: visible,
		HasMore: visible < len(terms),
		Terms:   terms[:visible],
	})
}

// TimelineAPI is the JSON endpoint behind the timeline filter island.
func TimelineAPI(w http.ResponseWriter, r *http.Request) error {
	filter := timeline.Filter{
		Query:        utils.GetQueryParam(r, "q"),
		Category:     utils.GetQueryParam(r, "category"),
		OnlyCritical: utils.GetQueryParam(r, "critical") == "true",
	}

	events := timeline.Apply(filter)

	return writeJSON(w, timelineResponse{
		Count:  len(events),
		Events: events,
	})
}

func writeJSON(w http.ResponseWriter, payload any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}

	return nil
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/visagefe/visagefe/core/glossary"
	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/template"
	"codeberg.org/visagefe/visagefe/server/utils"
)

type glossaryData struct {
	template.CommonData

	Meta          glossary.Meta
	FeaturedTerms []glossary.FeaturedTerm
	Letters       []string
	Terms         []glossary.Term

	// ActiveLetter is the alphabet filter, empty when all terms are shown.
	ActiveLetter string
}

// GlossaryPage renders the glossary with its alphabet filter.
func GlossaryPage(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	loc := i18n.LocaleFrom(ctx)

	glos := glossary.ForLocale(loc)
	letter := utils.GetQueryParam(r, "letter")

	data := glossaryData{
		CommonData:    template.Common(r),
		Meta:          glos.Meta,
		FeaturedTerms: glos.FeaturedTerms,
		Letters:       glossary.Letters(loc),
		Terms:         glossary.TermsByLetter(loc, letter),
		ActiveLetter:  letter,
	}
	data.Title = glos.Meta.Title
	data.Description = glos.Meta.Description

	return template.Render(w, "glossary", data)
}

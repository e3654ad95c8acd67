// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/visagefe/visagefe/core/content"
	"codeberg.org/visagefe/visagefe/core/glossary"
	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/template"
)

type homeData struct {
	template.CommonData

	Featured      []*content.Post
	Popular       []*content.Post
	FeaturedTerms []glossary.FeaturedTerm
}

// IndexPage renders the home page for the request's locale.
func IndexPage(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	loc := i18n.LocaleFrom(ctx)

	data := homeData{
		CommonData:    template.Common(r),
		Featured:      store.FeaturedPosts(loc, content.DefaultFeaturedLimit),
		Popular:       store.PopularPosts(loc, content.DefaultPopularLimit),
		FeaturedTerms: glossary.ForLocale(loc).FeaturedTerms,
	}
	data.Title = data.SiteName
	data.Description = i18n.Tr(ctx, "Facial surgery education, techniques and publications.")

	return template.Render(w, "home", data)
}

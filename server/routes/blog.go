// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/visagefe/visagefe/config"
	"codeberg.org/visagefe/visagefe/core/content"
	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/template"
	"codeberg.org/visagefe/visagefe/server/utils"
)

type blogIndexData struct {
	template.CommonData

	Posts      []*content.Post
	Featured   []*content.Post
	Categories []content.Category

	// ActiveCategory is the display name of the category filter, empty when
	// the full index is shown.
	ActiveCategory string
}

type blogPostData struct {
	template.CommonData

	Post    *content.Post
	Related []*content.Post

	// IsPreview marks draft posts reached through a preview link.
	IsPreview bool
}

// BlogIndexPage renders the blog index, optionally filtered to one category.
func BlogIndexPage(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	loc := i18n.LocaleFrom(ctx)

	data := blogIndexData{
		CommonData:     template.Common(r),
		Featured:       store.FeaturedPosts(loc, content.DefaultFeaturedLimit),
		Categories:     store.Categories(loc),
		ActiveCategory: utils.GetQueryParam(r, "category"),
	}

	if data.ActiveCategory != "" {
		data.Posts = store.PostsByCategory(loc, data.ActiveCategory)
	} else {
		data.Posts = store.PostsByLocale(loc)
	}

	data.Title = i18n.Tr(ctx, "Blog")
	data.Description = i18n.Tr(ctx, "Articles on facial surgery techniques, education and research.")

	return template.Render(w, "blog_index", data)
}

// BlogPostPage renders a single published post.
//
// Slugs resolve directly first, then through the canonical table, so a
// translated slug pasted under the wrong locale prefix still lands on the
// right article.
func BlogPostPage(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	loc := i18n.LocaleFrom(ctx)
	slug := r.PathValue("slug")

	post, ok := store.PostBySlug(loc, slug)
	if !ok {
		w.WriteHeader(http.StatusNotFound)

		return nil
	}

	data := blogPostData{
		CommonData: template.Common(r),
		Post:       post,
		Related:    store.RelatedPosts(post, content.DefaultRelatedLimit),
	}
	data.Title = post.Title
	data.Description = post.Description

	// Translated posts carry per-locale slugs, so the mechanical path
	// alternates from Common are wrong here. Swap in the canonical set.
	if alternates := store.Alternates(post.CanonicalSlug); len(alternates) > 0 {
		data.CommonData.Alternates = postAlternates(alternates)
	}

	return template.Render(w, "blog_post", data)
}

// postAlternates converts the store's canonical-slug siblings into hreflang
// entries with absolute URLs.
func postAlternates(alternates []content.Alternate) []i18n.Alternate {
	out := make([]i18n.Alternate, 0, len(alternates))
	for _, alt := range alternates {
		out = append(out, i18n.Alternate{
			Locale:   alt.Locale,
			URL:      config.Global.Site.RawURL + alt.URL,
			Hreflang: alt.Locale.Hreflang(),
		})
	}

	return out
}

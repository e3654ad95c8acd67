// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/visagefe/visagefe/core/content"
	"codeberg.org/visagefe/visagefe/server/template"
)

// PreviewPage renders a draft post behind a signed preview token.
//
// An invalid, expired or dangling token renders the themed 404 page rather
// than revealing whether the draft exists.
func PreviewPage(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Robots-Tag", "noindex")

	loc, slug, err := signer.Verify(r.PathValue("token"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)

		return nil
	}

	post, ok := store.DraftBySlug(loc, slug)
	if !ok {
		w.WriteHeader(http.StatusNotFound)

		return nil
	}

	data := blogPostData{
		CommonData: template.Common(r),
		Post:       post,
		Related:    store.RelatedPosts(post, content.DefaultRelatedLimit),
		IsPreview:  true,
	}
	data.Title = post.Title
	data.Description = post.Description

	return template.Render(w, "blog_post", data)
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/visagefe/visagefe/core/content"
	"codeberg.org/visagefe/visagefe/i18n"
)

type apiTestPost struct {
	locale   i18n.Locale
	slug     string
	title    string
	category string
	date     string
}

func setupArticleStore(t *testing.T, posts []apiTestPost) {
	t.Helper()

	fsys := fstest.MapFS{}

	for _, p := range posts {
		doc := fmt.Sprintf(
			"---\ntitle: %q\ndescription: About %s\ncategory: %s\ndate: %s\n---\n\n# %s\n\nBody.\n",
			p.title, p.slug, p.category, p.date, p.title,
		)
		fsys[fmt.Sprintf("blog/%s/%s.md", p.locale, p.slug)] = &fstest.MapFile{Data: []byte(doc)}
	}

	testStore := content.NewStore()
	require.NoError(t, testStore.Load(fsys, "blog"))

	prevStore, prevSigner := store, signer
	t.Cleanup(func() { Setup(prevStore, prevSigner) })

	Setup(testStore, nil)
}

func apiRequest(t *testing.T, handler func(http.ResponseWriter, *http.Request) error, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, target, nil)
	r = r.WithContext(i18n.WithRequest(r.Context(), r))

	w := httptest.NewRecorder()
	require.NoError(t, handler(w, r))

	return w
}

func TestBlogSearchAPI(t *testing.T) {
	setupArticleStore(t, []apiTestPost{
		{locale: i18n.PT, slug: "deep-neck-entenda", title: "Deep Neck: Entenda", category: "Técnicas", date: "2025-02-01"},
		{locale: i18n.PT, slug: "anatomia-do-smas", title: "Anatomia do SMAS", category: "Técnicas", date: "2025-01-01"},
		{locale: i18n.PT, slug: "escolher-cirurgiao", title: "Como Escolher", category: "Educação", date: "2025-03-01"},
		{locale: i18n.EN, slug: "deep-neck-explained", title: "Deep Neck Explained", category: "Techniques", date: "2025-02-01"},
	})

	w := apiRequest(t, BlogSearchAPI, "/api/search/blog?locale=pt&q=deep+neck")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var resp blogSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "deep neck", resp.Query)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "deep-neck-entenda", resp.Results[0].Slug)
}

func TestBlogSearchAPIShortQueryReturnsAll(t *testing.T) {
	setupArticleStore(t, []apiTestPost{
		{locale: i18n.EN, slug: "one", title: "One", category: "Education", date: "2025-01-01"},
		{locale: i18n.EN, slug: "two", title: "Two", category: "Education", date: "2025-02-01"},
	})

	w := apiRequest(t, BlogSearchAPI, "/api/search/blog?q=o")

	var resp blogSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Results, 2)
}

func TestBlogSearchAPIComposesFieldsCaseInsensitively(t *testing.T) {
	setupArticleStore(t, []apiTestPost{
		{locale: i18n.EN, slug: "smas-basics", title: "SMAS Basics", category: "Techniques", date: "2025-01-01"},
		{locale: i18n.EN, slug: "recovery", title: "Recovery Guide", category: "Education", date: "2025-02-01"},
	})

	// Matches the category field, lowercased.
	w := apiRequest(t, BlogSearchAPI, "/api/search/blog?q=educat")

	var resp blogSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "recovery", resp.Results[0].Slug)
}

func TestGlossarySearchAPIRejectsBadVisible(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "1.5"} {
		r := httptest.NewRequest(http.MethodGet, "/api/search/glossary?visible="+raw, nil)
		r = r.WithContext(i18n.WithRequest(r.Context(), r))

		w := httptest.NewRecorder()
		require.NoError(t, GlossarySearchAPI(w, r))

		assert.Equal(t, http.StatusBadRequest, w.Code, "visible=%s", raw)
	}
}

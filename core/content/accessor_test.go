// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/visagefe/visagefe/i18n"
)

func techniquesCorpus(t *testing.T) *Store {
	t.Helper()

	return buildCorpus(t, []testPost{
		{
			locale: i18n.PT, slug: "endomidface-visao-direta", title: "Endomidface por Visão Direta",
			category: "Técnicas", date: "2025-03-01", featured: true,
			canonicalSlug: "endomidface-direct-vision",
			relatedPosts:  []string{"deep-neck-explained", "smas-anatomy"},
		},
		{
			locale: i18n.PT, slug: "deep-neck-entenda", title: "Deep Neck: Entenda a Técnica",
			category: "Técnicas", date: "2025-02-01",
			canonicalSlug: "deep-neck-explained",
		},
		{
			locale: i18n.PT, slug: "anatomia-do-smas", title: "Anatomia do SMAS",
			category: "Técnicas", date: "2025-01-01",
			canonicalSlug: "smas-anatomy",
		},
		{
			locale: i18n.PT, slug: "como-escolher-cirurgiao", title: "Como Escolher seu Cirurgião",
			category: "Educação", date: "2025-04-01", featured: true,
			canonicalSlug: "choosing-your-surgeon",
		},
		{
			locale: i18n.PT, slug: "recuperacao-pos-operatoria", title: "Recuperação Pós-Operatória",
			category: "Educação", date: "2024-12-01",
		},
		{
			locale: i18n.EN, slug: "endomidface-direct-vision", title: "Endomidface by Direct Vision",
			category: "Techniques", date: "2025-03-01", featured: true,
			canonicalSlug: "endomidface-direct-vision",
		},
	})
}

func TestFeaturedPosts(t *testing.T) {
	store := techniquesCorpus(t)

	featured := store.FeaturedPosts(i18n.PT, 0)
	require.Len(t, featured, 2)
	// Newest first within the featured set.
	assert.Equal(t, "como-escolher-cirurgiao", featured[0].Slug)
	assert.Equal(t, "endomidface-visao-direta", featured[1].Slug)

	assert.Len(t, store.FeaturedPosts(i18n.PT, 1), 1)
}

func TestPostsByCategory(t *testing.T) {
	store := techniquesCorpus(t)

	tecnicas := store.PostsByCategory(i18n.PT, "Técnicas")
	require.Len(t, tecnicas, 3)
	assert.Equal(t, "endomidface-visao-direta", tecnicas[0].Slug)

	assert.Empty(t, store.PostsByCategory(i18n.PT, "Inexistente"))
}

func TestCategories(t *testing.T) {
	store := techniquesCorpus(t)

	categories := store.Categories(i18n.PT)
	require.Len(t, categories, 2)

	assert.Equal(t, Category{Name: "Técnicas", Slug: "tecnicas", Count: 3}, categories[0])
	assert.Equal(t, Category{Name: "Educação", Slug: "educacao", Count: 2}, categories[1])
}

func TestRelatedPostsUsesHandPickedList(t *testing.T) {
	store := techniquesCorpus(t)

	post, ok := store.PostBySlug(i18n.PT, "endomidface-visao-direta")
	require.True(t, ok)

	related := store.RelatedPosts(post, 0)
	require.Len(t, related, 2)

	slugs := []string{related[0].Slug, related[1].Slug}
	assert.Contains(t, slugs, "deep-neck-entenda")
	assert.Contains(t, slugs, "anatomia-do-smas")
}

func TestRelatedPostsFallsBackToCategory(t *testing.T) {
	store := techniquesCorpus(t)

	// No hand-picked related posts; same category, newest first, self excluded.
	post, ok := store.PostBySlug(i18n.PT, "anatomia-do-smas")
	require.True(t, ok)

	related := store.RelatedPosts(post, 0)
	require.Len(t, related, 2)
	assert.Equal(t, "endomidface-visao-direta", related[0].Slug)
	assert.Equal(t, "deep-neck-entenda", related[1].Slug)
}

func TestRelatedPostsDanglingReferencesFallBack(t *testing.T) {
	store := buildCorpus(t, []testPost{
		{
			locale: i18n.EN, slug: "a", title: "A", category: "Techniques", date: "2025-01-01",
			relatedPosts: []string{"does-not-exist"},
		},
		{locale: i18n.EN, slug: "b", title: "B", category: "Techniques", date: "2025-02-01"},
	})

	post, ok := store.PostBySlug(i18n.EN, "a")
	require.True(t, ok)

	// Every hand-picked slug dangles, so the category fallback applies.
	related := store.RelatedPosts(post, 0)
	require.Len(t, related, 1)
	assert.Equal(t, "b", related[0].Slug)
}

func TestPostBySlugCanonicalFallback(t *testing.T) {
	store := techniquesCorpus(t)

	// Direct slug.
	post, ok := store.PostBySlug(i18n.PT, "endomidface-visao-direta")
	require.True(t, ok)
	assert.Equal(t, "Endomidface por Visão Direta", post.Title)

	// Canonical slug reaches the locale's translation.
	post, ok = store.PostBySlug(i18n.PT, "endomidface-direct-vision")
	require.True(t, ok)
	assert.Equal(t, "endomidface-visao-direta", post.Slug)

	_, ok = store.PostBySlug(i18n.PT, "missing")
	assert.False(t, ok)
}

func TestPopularPostsFeaturedFirst(t *testing.T) {
	store := techniquesCorpus(t)

	popular := store.PopularPosts(i18n.PT, 3)
	require.Len(t, popular, 3)

	assert.True(t, popular[0].Featured)
	assert.True(t, popular[1].Featured)
	assert.False(t, popular[2].Featured)

	// Date order kept inside each group.
	assert.Equal(t, "como-escolher-cirurgiao", popular[0].Slug)
	assert.Equal(t, "endomidface-visao-direta", popular[1].Slug)
	assert.Equal(t, "deep-neck-entenda", popular[2].Slug)
}

func TestAlternates(t *testing.T) {
	store := techniquesCorpus(t)

	alternates := store.Alternates("endomidface-direct-vision")
	require.Len(t, alternates, 2)

	assert.Equal(t, i18n.EN, alternates[0].Locale)
	assert.Equal(t, "/blog/endomidface-direct-vision", alternates[0].URL)

	assert.Equal(t, i18n.PT, alternates[1].Locale)
	assert.Equal(t, "/pt/blog/endomidface-visao-direta", alternates[1].URL)

	assert.Empty(t, store.Alternates(""))
	assert.Empty(t, store.Alternates("unknown"))
}

func TestArticlesProjection(t *testing.T) {
	store := techniquesCorpus(t)

	articles := store.Articles(i18n.PT)
	require.Len(t, articles, 5)

	first := articles[0]
	assert.Equal(t, "como-escolher-cirurgiao", first.Slug)
	assert.Equal(t, "/pt/blog/como-escolher-cirurgiao", first.URL)
	assert.Equal(t, defaultReadTime, first.ReadTime)
	assert.NotEmpty(t, first.Date)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Techniques", "techniques"},
		{"Técnicas", "tecnicas"},
		{"Educação", "educacao"},
		{"Facial Surgery", "facial-surgery"},
		{"Q&A  Session", "qa-session"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestPostURL(t *testing.T) {
	assert.Equal(t, "/pt/blog/my-slug", PostURL(i18n.PT, "my-slug"))
	assert.Equal(t, "/blog/my-slug", PostURL(i18n.EN, "my-slug"))
	assert.Equal(t, "/es/blog/my-slug", PostURL(i18n.ES, "my-slug"))
}

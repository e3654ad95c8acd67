// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/visagefe/visagefe/i18n"
)

type testPost struct {
	locale        i18n.Locale
	slug          string
	title         string
	category      string
	date          string
	featured      bool
	draft         bool
	canonicalSlug string
	relatedPosts  []string
}

func buildCorpus(t *testing.T, posts []testPost) *Store {
	t.Helper()

	fsys := fstest.MapFS{}

	for _, p := range posts {
		fm := "---\n"
		fm += fmt.Sprintf("title: %q\n", p.title)
		fm += "description: A description for " + p.slug + "\n"
		fm += "category: " + p.category + "\n"
		fm += "date: " + p.date + "\n"

		if p.featured {
			fm += "featured: true\n"
		}

		if p.draft {
			fm += "draft: true\n"
		}

		if p.canonicalSlug != "" {
			fm += "canonicalSlug: " + p.canonicalSlug + "\n"
		}

		if len(p.relatedPosts) > 0 {
			fm += "relatedPosts:\n"
			for _, r := range p.relatedPosts {
				fm += "  - " + r + "\n"
			}
		}

		fm += "---\n\n# " + p.title + "\n\nBody of " + p.slug + ".\n"

		name := fmt.Sprintf("blog/%s/%s.md", p.locale, p.slug)
		fsys[name] = &fstest.MapFile{Data: []byte(fm)}
	}

	store := NewStore()
	require.NoError(t, store.Load(fsys, "blog"))

	return store
}

func TestLoadSortsNewestFirst(t *testing.T) {
	store := buildCorpus(t, []testPost{
		{locale: i18n.PT, slug: "antigo", title: "Antigo", category: "Técnicas", date: "2024-01-10"},
		{locale: i18n.PT, slug: "novo", title: "Novo", category: "Técnicas", date: "2025-06-01"},
		{locale: i18n.PT, slug: "meio", title: "Meio", category: "Educação", date: "2024-09-15"},
	})

	posts := store.PostsByLocale(i18n.PT)
	require.Len(t, posts, 3)
	assert.Equal(t, "novo", posts[0].Slug)
	assert.Equal(t, "meio", posts[1].Slug)
	assert.Equal(t, "antigo", posts[2].Slug)
}

func TestLoadExcludesDrafts(t *testing.T) {
	store := buildCorpus(t, []testPost{
		{locale: i18n.EN, slug: "published", title: "Published", category: "Education", date: "2025-01-01"},
		{locale: i18n.EN, slug: "wip", title: "WIP", category: "Education", date: "2025-02-01", draft: true},
	})

	posts := store.PostsByLocale(i18n.EN)
	require.Len(t, posts, 1)
	assert.Equal(t, "published", posts[0].Slug)

	_, ok := store.PostBySlug(i18n.EN, "wip")
	assert.False(t, ok)

	draft, ok := store.DraftBySlug(i18n.EN, "wip")
	require.True(t, ok)
	assert.Equal(t, "WIP", draft.Title)
}

func TestLoadRejectsBadPosts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no frontmatter",
			content: "# Just a heading\n",
			wantErr: "no frontmatter",
		},
		{
			name: "missing title",
			content: "---\ndescription: d\ncategory: c\ndate: 2025-01-01\n---\nbody",

			wantErr: "missing title",
		},
		{
			name:    "bad date",
			content: "---\ntitle: T\ndescription: d\ncategory: c\ndate: not-a-date\n---\nbody",
			wantErr: "unparseable date",
		},
		{
			name:    "locale mismatch",
			content: "---\ntitle: T\ndescription: d\ncategory: c\ndate: 2025-01-01\nlocale: pt\n---\nbody",
			wantErr: "does not match directory locale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"blog/en/bad.md": &fstest.MapFile{Data: []byte(tt.content)},
			}

			err := NewStore().Load(fsys, "blog")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRejectsDuplicateSlugs(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/en/dup.md": &fstest.MapFile{
			Data: []byte("---\ntitle: A\ndescription: d\ncategory: c\ndate: 2025-01-01\n---\nbody"),
		},
		"blog/pt/dup.md": &fstest.MapFile{
			Data: []byte("---\ntitle: B\ndescription: d\ncategory: c\ndate: 2025-01-01\n---\nbody"),
		},
	}

	// Same slug in different locales is fine.
	require.NoError(t, NewStore().Load(fsys, "blog"))
}

func TestParsePostDefaults(t *testing.T) {
	raw := []byte("---\ntitle: T\ndescription: d\ncategory: c\ndate: 2025-01-01\n---\nbody")

	post, err := parsePost("some-post.md", raw, i18n.EN)
	require.NoError(t, err)

	assert.Equal(t, "some-post", post.Slug)
	assert.Equal(t, defaultAuthor, post.Author)
	assert.Equal(t, defaultReadTime, post.ReadTime)
	assert.Equal(t, defaultArticleType, post.ArticleType)
	assert.False(t, post.Featured)
	assert.False(t, post.Draft)
}

func TestParsePostImageForms(t *testing.T) {
	asString := []byte("---\ntitle: T\ndescription: d\ncategory: c\ndate: 2025-01-01\nimage: /img/cover.webp\n---\nbody")

	post, err := parsePost("p.md", asString, i18n.EN)
	require.NoError(t, err)
	require.NotNil(t, post.Image)
	assert.Equal(t, "/img/cover.webp", post.Image.Src)
	assert.Empty(t, post.Image.Alt)

	asObject := []byte("---\ntitle: T\ndescription: d\ncategory: c\ndate: 2025-01-01\n" +
		"image:\n  src: /img/cover.webp\n  alt: Cover\n---\nbody")

	post, err = parsePost("p.md", asObject, i18n.EN)
	require.NoError(t, err)
	require.NotNil(t, post.Image)
	assert.Equal(t, "/img/cover.webp", post.Image.Src)
	assert.Equal(t, "Cover", post.Image.Alt)
}

func TestParsePostRendersMarkdown(t *testing.T) {
	raw := []byte("---\ntitle: T\ndescription: d\ncategory: c\ndate: 2025-01-01\n---\n" +
		"# Heading\n\nSome **bold** text.\n\n<script>alert(1)</script>\n")

	post, err := parsePost("p.md", raw, i18n.EN)
	require.NoError(t, err)

	html := string(post.HTML)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.NotContains(t, html, "<script>")
}

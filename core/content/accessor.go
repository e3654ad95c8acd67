// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"sort"

	"codeberg.org/visagefe/visagefe/i18n"
)

// Default listing limits.
const (
	DefaultRelatedLimit  = 3
	DefaultFeaturedLimit = 3
	DefaultPopularLimit  = 5
)

// Category is one blog category with its post count.
type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// PostsByLocale returns the published posts for a locale, newest first.
// The returned slice is shared; callers must not mutate it.
func (s *Store) PostsByLocale(loc i18n.Locale) []*Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.byLocale[loc]
}

// PostBySlug looks a published post up by its URL slug. When no post carries
// the slug directly, the canonical slug is tried, so a canonical link reaches
// the locale's translation of the article.
func (s *Store) PostBySlug(loc i18n.Locale, slug string) (*Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if post, ok := s.bySlug[loc][slug]; ok {
		return post, true
	}

	for _, post := range s.byCanonical[slug] {
		if post.Locale == loc {
			return post, true
		}
	}

	return nil, false
}

// DraftBySlug looks an unpublished post up for the preview route. Published
// posts are not reachable through it.
func (s *Store) DraftBySlug(loc i18n.Locale, slug string) (*Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.drafts[loc][slug]

	return post, ok
}

// FeaturedPosts returns up to limit featured posts, newest first. A
// non-positive limit applies DefaultFeaturedLimit.
func (s *Store) FeaturedPosts(loc i18n.Locale, limit int) []*Post {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	var featured []*Post

	for _, post := range s.PostsByLocale(loc) {
		if !post.Featured {
			continue
		}

		featured = append(featured, post)
		if len(featured) == limit {
			break
		}
	}

	return featured
}

// PostsByCategory returns the locale's posts in the named category, newest
// first. The category is matched by display name, not slug.
func (s *Store) PostsByCategory(loc i18n.Locale, category string) []*Post {
	var matched []*Post

	for _, post := range s.PostsByLocale(loc) {
		if post.Category == category {
			matched = append(matched, post)
		}
	}

	return matched
}

// Categories returns the locale's categories with post counts, most populous
// first. Ties keep a stable name order.
func (s *Store) Categories(loc i18n.Locale) []Category {
	counts := make(map[string]int)

	for _, post := range s.PostsByLocale(loc) {
		counts[post.Category]++
	}

	categories := make([]Category, 0, len(counts))
	for name, count := range counts {
		categories = append(categories, Category{
			Name:  name,
			Slug:  Slugify(name),
			Count: count,
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count == categories[j].Count {
			return categories[i].Name < categories[j].Name
		}

		return categories[i].Count > categories[j].Count
	})

	return categories
}

// RelatedPosts returns up to limit posts related to post, excluding the post
// itself. Hand-picked canonical slugs from the frontmatter win when any of
// them resolve; otherwise the newest posts sharing the category are used.
func (s *Store) RelatedPosts(post *Post, limit int) []*Post {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	others := make([]*Post, 0)

	for _, p := range s.PostsByLocale(post.Locale) {
		if p.Slug != post.Slug {
			others = append(others, p)
		}
	}

	if len(post.RelatedPosts) > 0 {
		picked := make([]*Post, 0, limit)

		for _, p := range others {
			if p.CanonicalSlug == "" {
				continue
			}

			for _, want := range post.RelatedPosts {
				if p.CanonicalSlug == want {
					picked = append(picked, p)

					break
				}
			}
		}

		if len(picked) > 0 {
			if len(picked) > limit {
				picked = picked[:limit]
			}

			return picked
		}
	}

	sameCategory := make([]*Post, 0, limit)

	for _, p := range others {
		if p.Category != post.Category {
			continue
		}

		sameCategory = append(sameCategory, p)
		if len(sameCategory) == limit {
			break
		}
	}

	return sameCategory
}

// PopularPosts returns up to limit posts with featured ones first, each group
// keeping its date order.
func (s *Store) PopularPosts(loc i18n.Locale, limit int) []*Post {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	posts := s.PostsByLocale(loc)

	ordered := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if p.Featured {
			ordered = append(ordered, p)
		}
	}

	for _, p := range posts {
		if !p.Featured {
			ordered = append(ordered, p)
		}
	}

	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	return ordered
}

// Alternates returns the published translations sharing canonicalSlug, one
// per locale that has one. An empty canonical slug has no alternates.
func (s *Store) Alternates(canonicalSlug string) []Alternate {
	if canonicalSlug == "" {
		return nil
	}

	s.mu.RLock()
	posts := s.byCanonical[canonicalSlug]
	s.mu.RUnlock()

	alternates := make([]Alternate, 0, len(posts))
	for _, post := range posts {
		alternates = append(alternates, Alternate{
			Locale: post.Locale,
			Slug:   post.Slug,
			URL:    PostURL(post.Locale, post.Slug),
		})
	}

	sort.Slice(alternates, func(i, j int) bool {
		return alternates[i].Locale < alternates[j].Locale
	})

	return alternates
}

// Articles returns the locale's published posts as listing projections.
func (s *Store) Articles(loc i18n.Locale) []Article {
	posts := s.PostsByLocale(loc)

	articles := make([]Article, 0, len(posts))
	for _, post := range posts {
		articles = append(articles, post.Article())
	}

	return articles
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"html/template"
	"time"

	"codeberg.org/visagefe/visagefe/i18n"
)

// FAQItem is one question and answer pair rendered into the post's FAQ
// section and its structured data.
type FAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Image is a post's cover image. Frontmatter may give it as a bare path or
// as a src/alt object; the loader normalizes both forms into this struct.
type Image struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// frontmatter is the raw YAML header of a post file.
type frontmatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	ReadTime    string   `yaml:"readTime"`
	Featured    bool     `yaml:"featured"`
	Draft       bool     `yaml:"draft"`
	Keywords    []string `yaml:"keywords"`

	CanonicalURL string `yaml:"canonicalUrl"`

	Image   any    `yaml:"image"` // string or {src, alt}
	OGImage string `yaml:"ogImage"`

	RelatedPosts []string  `yaml:"relatedPosts"`
	ArticleType  string    `yaml:"articleType"`
	FAQ          []FAQItem `yaml:"faq"`

	Locale        i18n.Locale `yaml:"locale"`
	CanonicalSlug string      `yaml:"canonicalSlug"`
}

// Post is one fully loaded blog article.
type Post struct {
	// Slug is the post's URL segment, taken from the filename.
	Slug   string
	Locale i18n.Locale

	Title       string
	Description string
	Category    string
	Date        time.Time
	Author      string
	ReadTime    string
	Featured    bool
	Draft       bool
	Keywords    []string

	CanonicalURL string
	Image        *Image
	OGImage      string

	// RelatedPosts lists canonical slugs of hand-picked related articles.
	RelatedPosts []string
	ArticleType  string
	FAQ          []FAQItem

	// CanonicalSlug links translations of the same article. Posts without
	// one are standalone and have no alternates.
	CanonicalSlug string

	// Markdown is the raw body; HTML is its rendered, sanitized form.
	Markdown string
	HTML     template.HTML
}

// Article is the lightweight projection of a Post used by listing pages and
// the search endpoints, where the rendered body is dead weight.
type Article struct {
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	ReadTime    string      `json:"readTime"`
	Date        string      `json:"date"`
	Author      string      `json:"author"`
	Image       string      `json:"image,omitempty"`
	Featured    bool        `json:"featured"`
	Locale      i18n.Locale `json:"locale"`
	URL         string      `json:"url"`
}

// Article converts the post into its listing projection.
func (p *Post) Article() Article {
	a := Article{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		ReadTime:    p.ReadTime,
		Date:        p.Date.Format(time.RFC3339),
		Author:      p.Author,
		Featured:    p.Featured,
		Locale:      p.Locale,
		URL:         PostURL(p.Locale, p.Slug),
	}

	if p.Image != nil {
		a.Image = p.Image.Src
	}

	return a
}

// Alternate links one translation of a post for hreflang output.
type Alternate struct {
	Locale i18n.Locale
	Slug   string
	URL    string
}

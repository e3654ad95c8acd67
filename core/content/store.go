// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/i18n"
)

// Frontmatter limits mirror the SEO constraints the site enforces on authors.
const (
	maxTitleLen       = 150
	maxDescriptionLen = 300
)

const (
	defaultAuthor      = "Dr. Robério Brandão"
	defaultReadTime    = "5 min"
	defaultArticleType = "MedicalWebPage"
)

var errNoFrontmatter = errors.New("post has no frontmatter block")

// dateLayouts are the accepted frontmatter date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Store holds the loaded blog corpus, indexed for each access pattern the
// site needs. Load replaces the whole state atomically, so readers see either
// the previous corpus or the new one, never a mix.
type Store struct {
	mu sync.RWMutex

	// byLocale holds published posts sorted by date, newest first.
	byLocale    map[i18n.Locale][]*Post
	bySlug      map[i18n.Locale]map[string]*Post
	byCanonical map[string][]*Post
	drafts      map[i18n.Locale]map[string]*Post

	logger zerolog.Logger
}

// NewStore returns an empty store. Call Load before serving from it.
func NewStore() *Store {
	return &Store{
		logger: log.With().Str("sys", "content").Logger(),
	}
}

// Load walks root under fsys, expecting one subdirectory per locale with
// markdown posts inside, and replaces the store's state with the result.
// Any malformed post fails the whole load.
func (s *Store) Load(fsys fs.FS, root string) error {
	byLocale := make(map[i18n.Locale][]*Post)
	bySlug := make(map[i18n.Locale]map[string]*Post)
	byCanonical := make(map[string][]*Post)
	drafts := make(map[i18n.Locale]map[string]*Post)

	for _, loc := range i18n.Locales {
		bySlug[loc] = make(map[string]*Post)
		drafts[loc] = make(map[string]*Post)

		dir := path.Join(root, string(loc))

		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.logger.Warn().Str("dir", dir).Msg("No content directory for locale")

				continue
			}

			return fmt.Errorf("failed to read content directory %q: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}

			name := path.Join(dir, entry.Name())

			raw, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("failed to read %q: %w", name, err)
			}

			post, err := parsePost(entry.Name(), raw, loc)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			if _, dup := bySlug[loc][post.Slug]; dup {
				return fmt.Errorf("%s: duplicate slug %q for locale %q", name, post.Slug, loc)
			}

			if _, dup := drafts[loc][post.Slug]; dup {
				return fmt.Errorf("%s: duplicate slug %q for locale %q", name, post.Slug, loc)
			}

			if post.Draft {
				drafts[loc][post.Slug] = post

				continue
			}

			bySlug[loc][post.Slug] = post
			byLocale[loc] = append(byLocale[loc], post)

			if post.CanonicalSlug != "" {
				byCanonical[post.CanonicalSlug] = append(byCanonical[post.CanonicalSlug], post)
			}
		}
	}

	// Newest first; slug breaks date ties so ordering is deterministic.
	for _, posts := range byLocale {
		sort.SliceStable(posts, func(i, j int) bool {
			if posts[i].Date.Equal(posts[j].Date) {
				return posts[i].Slug < posts[j].Slug
			}

			return posts[i].Date.After(posts[j].Date)
		})
	}

	s.mu.Lock()
	s.byLocale = byLocale
	s.bySlug = bySlug
	s.byCanonical = byCanonical
	s.drafts = drafts
	s.mu.Unlock()

	total := 0
	for _, posts := range byLocale {
		total += len(posts)
	}

	s.logger.Info().Int("posts", total).Msg("Loaded blog content")

	return nil
}

// parsePost builds a Post from one markdown file. The slug comes from the
// filename; the locale comes from the directory and must match the
// frontmatter when the latter is present.
func parsePost(fileName string, raw []byte, loc i18n.Locale) (*Post, error) {
	parts := bytes.SplitN(raw, []byte("---"), 3)
	if len(parts) < 3 {
		return nil, errNoFrontmatter
	}

	var fm frontmatter
	if err := yaml.Unmarshal(parts[1], &fm); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	if fm.Locale != "" && fm.Locale != loc {
		return nil, fmt.Errorf("frontmatter locale %q does not match directory locale %q", fm.Locale, loc)
	}

	if err := validateFrontmatter(&fm); err != nil {
		return nil, err
	}

	date, err := parseDate(fm.Date)
	if err != nil {
		return nil, err
	}

	image, err := parseImage(fm.Image)
	if err != nil {
		return nil, err
	}

	body := parts[2]

	html, err := renderMarkdown(body)
	if err != nil {
		return nil, err
	}

	post := &Post{
		Slug:          strings.TrimSuffix(fileName, ".md"),
		Locale:        loc,
		Title:         fm.Title,
		Description:   fm.Description,
		Category:      fm.Category,
		Date:          date,
		Author:        fm.Author,
		ReadTime:      fm.ReadTime,
		Featured:      fm.Featured,
		Draft:         fm.Draft,
		Keywords:      fm.Keywords,
		CanonicalURL:  fm.CanonicalURL,
		Image:         image,
		OGImage:       fm.OGImage,
		RelatedPosts:  fm.RelatedPosts,
		ArticleType:   fm.ArticleType,
		FAQ:           fm.FAQ,
		CanonicalSlug: fm.CanonicalSlug,
		Markdown:      string(body),
		HTML:          html,
	}

	if post.Author == "" {
		post.Author = defaultAuthor
	}

	if post.ReadTime == "" {
		post.ReadTime = defaultReadTime
	}

	if post.ArticleType == "" {
		post.ArticleType = defaultArticleType
	}

	return post, nil
}

func validateFrontmatter(fm *frontmatter) error {
	switch {
	case fm.Title == "":
		return errors.New("missing title")
	case len(fm.Title) > maxTitleLen:
		return fmt.Errorf("title exceeds %d characters", maxTitleLen)
	case fm.Description == "":
		return errors.New("missing description")
	case len(fm.Description) > maxDescriptionLen:
		return fmt.Errorf("description exceeds %d characters", maxDescriptionLen)
	case fm.Category == "":
		return errors.New("missing category")
	case fm.Date == "":
		return errors.New("missing date")
	}

	return nil
}

// parseDate accepts the frontmatter date formats in dateLayouts. A date that
// parses under none of them is a load error; substituting the current time
// would silently reorder the blog index.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// parseImage normalizes the two frontmatter image forms, a bare path string
// or a {src, alt} mapping.
func parseImage(value any) (*Image, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return &Image{Src: v}, nil
	case map[string]any:
		img := &Image{}

		if src, ok := v["src"].(string); ok {
			img.Src = src
		}

		if alt, ok := v["alt"].(string); ok {
			img.Alt = alt
		}

		if img.Src == "" {
			return nil, errors.New("image object is missing src")
		}

		return img, nil
	default:
		return nil, fmt.Errorf("unsupported image value of type %T", value)
	}
}

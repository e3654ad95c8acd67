// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Checklinks validates the links in an exported HTML tree.

Internal links must resolve to another exported page, either directly, as
path/index.html, or as an entry in the canonical path table. With --external
the tool also HEAD-checks every absolute URL concurrently.

Exit code 0 means every checked link resolves; 1 means broken links were
found.

Usage:

	go run ./cmd/checklinks --dir dist [--external] [--timeout 10s] [--ignore-translations]
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/visagefe/visagefe/core/audit"
)

// externalConcurrency bounds parallel HEAD requests.
const externalConcurrency = 8

func main() {
	audit.SetDefaultLogger()

	dir := flag.String("dir", "dist", "exported HTML directory")
	pathTable := flag.String("paths", "data/paths.yaml", "canonical path table")
	external := flag.Bool("external", false, "also HEAD-check external URLs")
	timeout := flag.Duration("timeout", 10*time.Second, "timeout per external request")
	ignoreTranslations := flag.Bool("ignore-translations", false, "skip links under the /pt and /es prefixes")
	flag.Parse()

	pages, err := collectPages(*dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to collect exported pages")
	}

	known, err := knownTargets(pages, *pathTable)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build target set")
	}

	var (
		broken       int
		externalURLs = make(map[string][]string)
	)

	for _, page := range pages {
		links, err := extractLinks(filepath.Join(*dir, page))
		if err != nil {
			log.Error().Err(err).Str("page", page).Msg("Failed to parse page")

			broken++

			continue
		}

		for _, link := range links {
			switch {
			case strings.HasPrefix(link, "http://"), strings.HasPrefix(link, "https://"):
				externalURLs[link] = append(externalURLs[link], page)
			case strings.HasPrefix(link, "/"):
				if *ignoreTranslations && (strings.HasPrefix(link, "/pt/") || strings.HasPrefix(link, "/es/") || link == "/pt" || link == "/es") {
					continue
				}

				if !known[canonicalizeLink(link)] {
					log.Error().Str("page", page).Str("link", link).Msg("Broken internal link")

					broken++
				}
			}
		}
	}

	if *external {
		broken += checkExternal(externalURLs, *timeout)
	}

	if broken > 0 {
		log.Error().Int("broken", broken).Msg("Link check failed")
		os.Exit(1)
	}

	log.Info().Int("pages", len(pages)).Msg("All links resolve")
}

// collectPages returns the .html files under dir, relative to it.
func collectPages(dir string) ([]string, error) {
	var pages []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".html") {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}

			pages = append(pages, rel)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	return pages, nil
}

// knownTargets builds the set of link targets that count as resolving:
// every exported page under both spellings plus every slug in the canonical
// path table.
func knownTargets(pages []string, pathTableFile string) (map[string]bool, error) {
	known := make(map[string]bool)

	for _, page := range pages {
		path := "/" + filepath.ToSlash(page)

		known[path] = true
		known[strings.TrimSuffix(path, ".html")] = true

		if strings.HasSuffix(path, "/index.html") {
			trimmed := strings.TrimSuffix(path, "index.html")

			known[strings.TrimSuffix(trimmed, "/")] = true
			known[trimmed] = true
		}
	}

	known["/"] = true

	raw, err := os.ReadFile(pathTableFile)
	if err != nil {
		// The path table is optional for trees exported elsewhere.
		log.Warn().Err(err).Msg("Path table not loaded, checking against exported pages only")

		return known, nil
	}

	var table map[string]map[string]string
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("failed to parse path table: %w", err)
	}

	for _, slugs := range table {
		for locale, slug := range slugs {
			known[slug] = true

			if locale != "en" {
				known["/"+locale+slug] = true
			}
		}
	}

	return known, nil
}

func extractLinks(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			links = append(links, href)
		}
	})

	return links, nil
}

// canonicalizeLink strips fragments and query strings before lookup.
func canonicalizeLink(link string) string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}

	if link != "/" {
		link = strings.TrimSuffix(link, "/")
	}

	return link
}

// checkExternal HEAD-requests every distinct URL and returns the number of
// failures.
func checkExternal(urls map[string][]string, timeout time.Duration) int {
	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(externalConcurrency)

	results := make(chan string, len(urls))
	client := &http.Client{Timeout: timeout}

	for url, pages := range urls {
		group.Go(func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
			if err != nil {
				results <- url

				return nil
			}

			resp, err := client.Do(req)
			if err != nil {
				log.Error().Err(err).Str("url", url).Strs("pages", pages).Msg("External link unreachable")
				results <- url

				return nil
			}

			_ = resp.Body.Close()

			if resp.StatusCode >= http.StatusBadRequest {
				log.Error().Int("status", resp.StatusCode).Str("url", url).Strs("pages", pages).Msg("External link broken")
				results <- url
			}

			return nil
		})
	}

	_ = group.Wait()
	close(results)

	broken := 0
	for range results {
		broken++
	}

	return broken
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Fiximages repairs image references in blog posts.

For every post whose frontmatter references an image that does not exist on
disk, the tool looks for the closest existing image by filename keyword
overlap and rewrites the reference. With --dry-run the rewrites are only
reported.

Exit code 0 means every reference resolved (possibly after fixing);
1 means at least one reference has no acceptable match.

Usage:

	go run ./cmd/fiximages [--content content/blog] [--images assets/img/blog] [--dry-run]
*/
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"codeberg.org/visagefe/visagefe/core/audit"
)

// minScore is the minimum keyword overlap before a candidate counts as a
// match. Containment of one normalized name in the other adds half a point.
const minScore = 2.0

const filePerm = 0o644

func main() {
	audit.SetDefaultLogger()

	contentDir := flag.String("content", "content/blog", "blog content directory")
	imageDir := flag.String("images", "assets/img/blog", "directory holding the actual images")
	dryRun := flag.Bool("dry-run", false, "report rewrites without writing files")
	flag.Parse()

	images, err := listImages(*imageDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list images")
	}

	unresolved := 0

	err = filepath.WalkDir(*contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		if ok := processPost(path, images, *dryRun); !ok {
			unresolved++
		}

		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to walk content directory")
	}

	if unresolved > 0 {
		log.Error().Int("unresolved", unresolved).Msg("Some image references could not be fixed")
		os.Exit(1)
	}

	log.Info().Msg("All image references resolve")
}

var imageFieldRegexp = regexp.MustCompile(`(?m)^(\s*src:|\s*image:)\s*"?([^"\n]+?)"?\s*$`)

// processPost checks one post's image reference and rewrites it if broken.
// Returns false when the reference is broken and no match was found.
func processPost(path string, images []string, dryRun bool) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("Failed to read post")

		return false
	}

	match := imageFieldRegexp.FindStringSubmatch(string(raw))
	if match == nil {
		// Posts without an image field are fine.
		return true
	}

	ref := strings.TrimSpace(match[2])
	if imageExists(ref, images) {
		return true
	}

	best := findBestMatch(ref, filepath.Base(path), images)
	if best == "" {
		log.Error().
			Str("file", path).
			Str("reference", ref).
			Msg("Broken image reference with no acceptable match")

		return false
	}

	newRef := "/img/blog/" + best

	log.Info().
		Str("file", path).
		Str("old", ref).
		Str("new", newRef).
		Bool("dry_run", dryRun).
		Msg("Rewriting image reference")

	if dryRun {
		return true
	}

	updated := strings.Replace(string(raw), ref, newRef, 1)
	if err := os.WriteFile(path, []byte(updated), filePerm); err != nil {
		log.Error().Err(err).Str("file", path).Msg("Failed to write post")

		return false
	}

	return true
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory %s: %w", dir, err)
	}

	var images []string

	for _, entry := range entries {
		if !entry.IsDir() {
			images = append(images, entry.Name())
		}
	}

	return images, nil
}

func imageExists(ref string, images []string) bool {
	base := filepath.Base(ref)

	for _, img := range images {
		if img == base {
			return true
		}
	}

	return false
}

// findBestMatch scores every existing image against the broken reference and
// the post's filename keywords. Exact normalized matches win immediately.
func findBestMatch(ref, postFile string, images []string) string {
	refNorm := normalize(trimExt(filepath.Base(ref)))
	postKeywords := extractKeywords(postFile)

	for _, img := range images {
		if normalize(trimExt(img)) == refNorm {
			return img
		}
	}

	var (
		best      string
		bestScore float64
	)

	for _, img := range images {
		imgNorm := normalize(trimExt(img))
		imgKeywords := extractKeywords(img)

		score := 0.0

		for keyword := range postKeywords {
			if imgKeywords[keyword] {
				score++
			}
		}

		if strings.Contains(imgNorm, refNorm) || strings.Contains(refNorm, imgNorm) {
			score += 0.5
		}

		if score > bestScore {
			bestScore = score
			best = img
		}
	}

	if bestScore < minScore {
		return ""
	}

	return best
}

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var nonAlnumRegexp = regexp.MustCompile(`[^a-z0-9-]+`)

// normalize lowercases, strips accents and collapses everything that is not
// alphanumeric into single hyphens.
func normalize(s string) string {
	out, _, err := transform.String(deaccent, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}

	out = nonAlnumRegexp.ReplaceAllString(out, "-")

	return strings.Trim(out, "-")
}

// extractKeywords splits a normalized filename into words longer than two
// characters.
func extractKeywords(filename string) map[string]bool {
	keywords := make(map[string]bool)

	for _, word := range strings.Split(normalize(trimExt(filename)), "-") {
		if len(word) > 2 {
			keywords[word] = true
		}
	}

	return keywords
}

func trimExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

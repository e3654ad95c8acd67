// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Blogaudit checks blog posts against the editorial criteria: word count,
internal links, heading structure, frontmatter metadata, FAQ and keyword
coverage.

Exit code 0 means every post passed; 1 means at least one post has issues
or could not be read. Warnings alone do not fail the run.

Usage:

	go run ./cmd/blogaudit [--dir content/blog] [--file post.md] [--json] [--min-words 2000]
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/core/audit"
)

const (
	minInternalLinks = 5
	minFAQ           = 5
	minKeywords      = 5
	minH2            = 4
	maxTitleLen      = 60
	maxDescLen       = 160
)

// auditFrontmatter is deliberately looser than the server's loader: the
// audit reports on malformed metadata instead of refusing to read it.
type auditFrontmatter struct {
	Title       string              `yaml:"title"`
	Description string              `yaml:"description"`
	Keywords    []string            `yaml:"keywords"`
	FAQ         []map[string]string `yaml:"faq"`
}

// report is the per-file audit result.
type report struct {
	File          string   `json:"file"`
	Words         int      `json:"words"`
	InternalLinks int      `json:"internalLinks"`
	H1Count       int      `json:"h1Count"`
	H2Count       int      `json:"h2Count"`
	Issues        []string `json:"issues"`
	Warnings      []string `json:"warnings"`
}

func main() {
	audit.SetDefaultLogger()

	dir := flag.String("dir", "content/blog", "directory to audit recursively")
	file := flag.String("file", "", "audit a single file instead of a directory")
	jsonOut := flag.Bool("json", false, "emit the report as JSON")
	minWords := flag.Int("min-words", 2000, "minimum body word count")
	flag.Parse()

	files, err := collectFiles(*dir, *file)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to collect posts")
	}

	reports := make([]report, 0, len(files))
	failed := false

	for _, path := range files {
		rep, err := auditFile(path, *minWords)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("Failed to audit post")

			failed = true

			continue
		}

		if len(rep.Issues) > 0 {
			failed = true
		}

		reports = append(reports, rep)
	}

	if *jsonOut {
		if err := json.NewEncoder(os.Stdout).Encode(reports); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode report")
		}
	} else {
		printReports(reports)
	}

	if failed {
		os.Exit(1)
	}
}

func collectFiles(dir, single string) ([]string, error) {
	if single != "" {
		return []string{single}, nil
	}

	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	return files, nil
}

func auditFile(path string, minWords int) (report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return report{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	front, body, err := splitFrontmatter(string(raw))
	if err != nil {
		return report{}, err
	}

	rep := report{File: path}

	var meta auditFrontmatter
	if err := yaml.Unmarshal([]byte(front), &meta); err != nil {
		rep.Issues = append(rep.Issues, fmt.Sprintf("frontmatter does not parse: %v", err))

		return rep, nil
	}

	rep.Words = countWords(body)
	rep.InternalLinks = len(internalLinks(body))
	rep.H1Count = len(headingRegexp(1).FindAllString(body, -1))
	rep.H2Count = len(headingRegexp(2).FindAllString(body, -1))

	if rep.Words < minWords {
		rep.Issues = append(rep.Issues, fmt.Sprintf("word count %d below minimum %d", rep.Words, minWords))
	}

	if rep.InternalLinks < minInternalLinks {
		rep.Issues = append(rep.Issues, fmt.Sprintf("internal links %d below minimum %d", rep.InternalLinks, minInternalLinks))
	}

	switch {
	case rep.H1Count == 0:
		rep.Issues = append(rep.Issues, "missing H1")
	case rep.H1Count > 1:
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("multiple H1 headings: %d", rep.H1Count))
	}

	if rep.H2Count < minH2 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("only %d H2 headings, %d recommended", rep.H2Count, minH2))
	}

	switch {
	case meta.Title == "":
		rep.Issues = append(rep.Issues, "missing title")
	case len([]rune(meta.Title)) > maxTitleLen:
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("title is %d characters, max %d", len([]rune(meta.Title)), maxTitleLen))
	}

	switch {
	case meta.Description == "":
		rep.Issues = append(rep.Issues, "missing description")
	case len([]rune(meta.Description)) > maxDescLen:
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("description is %d characters, max %d", len([]rune(meta.Description)), maxDescLen))
	}

	if len(meta.FAQ) < minFAQ {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("only %d FAQ entries, %d recommended", len(meta.FAQ), minFAQ))
	}

	if len(meta.Keywords) < minKeywords {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("only %d keywords, %d recommended", len(meta.Keywords), minKeywords))
	}

	return rep, nil
}

var errNoFrontmatter = fmt.Errorf("no frontmatter block")

func splitFrontmatter(raw string) (front, body string, err error) {
	parts := strings.SplitN(raw, "---", 3)
	if len(parts) < 3 || strings.TrimSpace(parts[0]) != "" {
		return "", "", errNoFrontmatter
	}

	return parts[1], parts[2], nil
}

var (
	codeBlockRegexp  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRegexp = regexp.MustCompile("`[^`]+`")
	linkRegexp       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	formattingRegexp = regexp.MustCompile(`[#*\-_=]`)
)

// countWords counts body words after stripping code, link targets and
// markdown formatting, mirroring what a reader actually reads.
func countWords(body string) int {
	clean := codeBlockRegexp.ReplaceAllString(body, "")
	clean = inlineCodeRegexp.ReplaceAllString(clean, "")
	clean = linkRegexp.ReplaceAllString(clean, "$1")
	clean = formattingRegexp.ReplaceAllString(clean, "")

	return len(strings.Fields(clean))
}

// internalLinks returns markdown link targets pointing inside the site.
func internalLinks(body string) []string {
	var links []string

	for _, match := range linkRegexp.FindAllStringSubmatch(body, -1) {
		url := match[2]
		if strings.HasPrefix(url, "/") || strings.HasPrefix(url, "./") {
			links = append(links, url)
		}
	}

	return links
}

func headingRegexp(level int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?m)^#{%d}\s+.+$`, level))
}

func printReports(reports []report) {
	clean := 0

	for _, rep := range reports {
		if len(rep.Issues) == 0 && len(rep.Warnings) == 0 {
			clean++

			continue
		}

		event := log.Info()
		if len(rep.Issues) > 0 {
			event = log.Error()
		}

		event.
			Str("file", rep.File).
			Int("words", rep.Words).
			Int("internal_links", rep.InternalLinks).
			Strs("issues", rep.Issues).
			Strs("warnings", rep.Warnings).
			Msg("Post audited")
	}

	log.Info().
		Int("total", len(reports)).
		Int("clean", clean).
		Msg("Audit complete")
}

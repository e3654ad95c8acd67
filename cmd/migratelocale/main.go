// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Migratelocale rewrites a locale code across content, data and translation
files, for example when collapsing a regional code like pt-BR into pt.

Patterns that must keep the regional code survive the rewrite untouched:
hreflang attributes, HTML lang attributes, Content-Language headers and
og:locale values. With --dry-run the affected files are only listed.

Exit code 0 means the migration ran (or would run) cleanly; 1 means at
least one file could not be processed.

Usage:

	go run ./cmd/migratelocale --from pt-BR --to pt [--dir .] [--dry-run]
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

	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/core/audit"
)

const filePerm = 0o644

// migratable file extensions. Binary assets are never touched.
var textExtensions = map[string]bool{
	".md":   true,
	".yaml": true,
	".yml":  true,
	".po":   true,
	".tmpl": true,
	".html": true,
	".txt":  true,
}

func main() {
	audit.SetDefaultLogger()

	from := flag.String("from", "", "locale code to replace")
	to := flag.String("to", "", "replacement locale code")
	dir := flag.String("dir", ".", "directory to migrate recursively")
	dryRun := flag.Bool("dry-run", false, "list affected files without writing")
	flag.Parse()

	if *from == "" || *to == "" || *from == *to {
		log.Fatal().Msg("Both --from and --to are required and must differ")
	}

	protected := protectedPatterns(*from)
	failed := 0
	changed := 0

	err := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// never rewrite VCS internals
			if d.Name() == ".git" {
				return filepath.SkipDir
			}

			return nil
		}

		if !textExtensions[filepath.Ext(path)] {
			return nil
		}

		didChange, err := migrateFile(path, *from, *to, protected, *dryRun)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("Failed to migrate file")

			failed++

			return nil
		}

		if didChange {
			changed++
		}

		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to walk directory")
	}

	log.Info().
		Int("changed", changed).
		Bool("dry_run", *dryRun).
		Msg("Migration complete")

	if failed > 0 {
		os.Exit(1)
	}
}

// protectedPatterns matches occurrences of the source locale that must keep
// their regional form.
func protectedPatterns(from string) []*regexp.Regexp {
	quoted := regexp.QuoteMeta(from)

	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)hreflang\s*=\s*["']` + quoted + `["']`),
		regexp.MustCompile(`(?i)\blang\s*=\s*["']` + quoted + `["']`),
		regexp.MustCompile(`(?i)Content-Language\s*[:=]\s*["']?` + quoted + `["']?`),
		regexp.MustCompile(`(?i)og:locale["'\s:=]+` + quoted),
	}
}

func migrateFile(path, from, to string, protected []*regexp.Regexp, dryRun bool) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(raw)
	if !strings.Contains(content, from) {
		return false, nil
	}

	// Shelter protected matches behind placeholders, rewrite, then restore.
	var originals []string

	for _, pattern := range protected {
		content = pattern.ReplaceAllStringFunc(content, func(match string) string {
			placeholder := fmt.Sprintf("\x00PROTECTED%d\x00", len(originals))
			originals = append(originals, match)

			return placeholder
		})
	}

	content = strings.ReplaceAll(content, from, to)

	for i, original := range originals {
		content = strings.Replace(content, fmt.Sprintf("\x00PROTECTED%d\x00", i), original, 1)
	}

	if content == string(raw) {
		return false, nil
	}

	log.Info().Str("file", path).Bool("dry_run", dryRun).Msg("Locale code rewritten")

	if dryRun {
		return true, nil
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return true, nil
}

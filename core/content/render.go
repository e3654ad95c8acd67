// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithUnsafe(),
		),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts a markdown body to sanitized HTML.
func renderMarkdown(body []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	// goldmark output is trusted except for raw HTML passed through by
	// WithUnsafe, which the sanitizer strips back to a UGC-safe subset.
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes())), nil
}

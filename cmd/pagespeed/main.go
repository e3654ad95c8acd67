// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Pagespeed queries a PageSpeed Insights style endpoint for one or more pages
and reports the Lighthouse category scores.

Exit code 0 when every requested category scores at or above the threshold;
1 otherwise.

Usage:

	go run ./cmd/pagespeed --url https://example.com [--mobile] [--categories performance,seo] [--min 90] [--timeout 60s]
	go run ./cmd/pagespeed --sample result.json
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"codeberg.org/visagefe/visagefe/core/audit"
)

const defaultEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

func main() {
	audit.SetDefaultLogger()

	pageURL := flag.String("url", "", "page to analyze")
	sample := flag.String("sample", "", "read a saved JSON response instead of querying the API")
	endpoint := flag.String("endpoint", defaultEndpoint, "PageSpeed API endpoint")
	mobile := flag.Bool("mobile", false, "use the mobile strategy instead of desktop")
	categoriesFlag := flag.String("categories", "performance,accessibility,best-practices,seo", "comma-separated categories")
	minScore := flag.Int("min", 90, "minimum acceptable score per category")
	timeout := flag.Duration("timeout", 60*time.Second, "request timeout")
	flag.Parse()

	categories := strings.Split(*categoriesFlag, ",")

	body, err := fetchResult(*pageURL, *sample, *endpoint, *mobile, categories, *timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to obtain PageSpeed result")
	}

	if !reportScores(body, categories, *minScore) {
		os.Exit(1)
	}
}

func fetchResult(pageURL, sample, endpoint string, mobile bool, categories []string, timeout time.Duration) ([]byte, error) {
	if sample != "" {
		raw, err := os.ReadFile(sample)
		if err != nil {
			return nil, fmt.Errorf("failed to read sample %s: %w", sample, err)
		}

		return raw, nil
	}

	if pageURL == "" {
		return nil, fmt.Errorf("either --url or --sample is required")
	}

	api, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	query := api.Query()
	query.Set("url", pageURL)

	strategy := "desktop"
	if mobile {
		strategy = "mobile"
	}

	query.Set("strategy", strategy)

	for _, category := range categories {
		query.Add("category", category)
	}

	api.RawQuery = query.Encode()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return raw, nil
}

// reportScores extracts each category score and returns whether all meet the
// threshold.
func reportScores(body []byte, categories []string, minScore int) bool {
	ok := true

	for _, category := range categories {
		path := fmt.Sprintf("lighthouseResult.categories.%s.score", strings.TrimSpace(category))

		result := gjson.GetBytes(body, path)
		if !result.Exists() {
			log.Error().Str("category", category).Msg("Category missing from response")

			ok = false

			continue
		}

		score := int(result.Float() * 100)

		event := log.Info()
		if score < minScore {
			event = log.Error()

			ok = false
		}

		event.
			Str("category", category).
			Int("score", score).
			Int("min", minScore).
			Msg("Category scored")
	}

	return ok
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

//go:build integration

/*
To run these tests, specify `-tags=integration` when running `go test`.
*/
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"testing"
	"time"
)

const (
	// Server configuration constants.
	host      = "localhost:8485"
	authority = "http://localhost:8485"

	// Polling constants.
	retryCount  = 10
	dialTimeout = 250 * time.Millisecond
)

// httpTestCase defines a test case.
type httpTestCase struct {
	URL                string
	Method             string
	ExpectedStatusCode int
}

// setDefault sets the default values for the test case.
func (c *httpTestCase) setDefault() {
	if c.ExpectedStatusCode == 0 {
		c.ExpectedStatusCode = 200
	}
}

// TestMain is used for global setup and teardown.
//
// It starts the server and waits for it to be available before running tests.
func TestMain(m *testing.M) {
	os.Setenv("VISAGEFE_PORT", "8485")
	os.Setenv("VISAGEFE_LOG_LEVEL", "warn")

	go func() {
		if err := run(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for the server.
	if !waitForServerReady() {
		log.Fatalf("Server did not start in time")
	}

	os.Exit(m.Run())
}

// waitForServerReady polls the server until it's available or the retries are exhausted.
func waitForServerReady() bool {
	for range retryCount {
		conn, err := net.DialTimeout("tcp", host, dialTimeout)
		if err == nil {
			_ = conn.Close()

			return true // Server is up.
		}

		time.Sleep(dialTimeout)
	}

	return false
}

// TestBasicAllRoutes tests all basic routes of the server.
func TestBasicAllRoutes(t *testing.T) {
	t.Parallel()

	testCases := []httpTestCase{
		// Home pages, one per locale
		{
			URL:    "/",
			Method: http.MethodGet,
		},
		{
			URL:    "/pt",
			Method: http.MethodGet,
		},
		{
			URL:    "/es",
			Method: http.MethodGet,
		},

		// Blog index per locale
		{
			URL:    "/blog",
			Method: http.MethodGet,
		},
		{
			URL:    "/pt/blog",
			Method: http.MethodGet,
		},
		{
			URL:    "/es/blog",
			Method: http.MethodGet,
		},
		{
			// Category filter
			URL:    "/pt/blog?category=T%C3%A9cnicas",
			Method: http.MethodGet,
		},

		// Blog posts from the embedded corpus
		{
			URL:    "/blog/endomidface-direct-vision",
			Method: http.MethodGet,
		},
		{
			URL:    "/pt/blog/endomidface-visao-direta",
			Method: http.MethodGet,
		},
		{
			URL:                "/blog/no-such-post",
			Method:             http.MethodGet,
			ExpectedStatusCode: 404,
		},

		// Glossary per locale, localized slugs
		{
			URL:    "/glossary",
			Method: http.MethodGet,
		},
		{
			URL:    "/pt/glossario",
			Method: http.MethodGet,
		},
		{
			URL:    "/es/glosario",
			Method: http.MethodGet,
		},
		{
			URL:    "/glossary?letter=S",
			Method: http.MethodGet,
		},

		// Timeline per locale
		{
			URL:    "/about/timeline",
			Method: http.MethodGet,
		},
		{
			URL:    "/pt/sobre/linha-do-tempo",
			Method: http.MethodGet,
		},
		{
			URL:    "/es/sobre/linea-del-tiempo",
			Method: http.MethodGet,
		},

		// JSON endpoints behind the islands
		{
			URL:    "/api/search/blog?q=endomidface",
			Method: http.MethodGet,
		},
		{
			URL:    "/api/search/blog?locale=pt&q=endomidface",
			Method: http.MethodGet,
		},
		{
			URL:    "/api/search/glossary?letter=S",
			Method: http.MethodGet,
		},
		{
			URL:                "/api/search/glossary?visible=abc",
			Method:             http.MethodGet,
			ExpectedStatusCode: 400,
		},
		{
			URL:    "/api/timeline?critical=true",
			Method: http.MethodGet,
		},

		// Redirect chain: /en/* collapses to the unprefixed path, which the
		// client follows to a 200.
		{
			URL:    "/en/blog",
			Method: http.MethodGet,
		},

		// Invalid preview tokens look like missing pages.
		{
			URL:                "/preview/not-a-token",
			Method:             http.MethodGet,
			ExpectedStatusCode: 404,
		},

		// Static assets
		{
			URL:    "/robots.txt",
			Method: http.MethodGet,
		},
		{
			URL:    "/css/style.css",
			Method: http.MethodGet,
		},
		{
			URL:    "/js/blog-search.js",
			Method: http.MethodGet,
		},

		{
			URL:                "/no-such-page",
			Method:             http.MethodGet,
			ExpectedStatusCode: 404,
		},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s %s", tc.Method, tc.URL), func(t *testing.T) {
			t.Parallel()
			tc.setDefault()

			resp := makeRequest(t, buildRequest(t, authority+tc.URL, tc.Method))
			defer resp.Body.Close()

			if resp.StatusCode != tc.ExpectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.ExpectedStatusCode, resp.StatusCode)
			}
		})
	}
}

func buildRequest(t *testing.T, link, method string) *http.Request {
	t.Helper()

	req, err := http.NewRequestWithContext(context.TODO(), method, link, nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:122.0) Gecko/20100101 Firefox/122.0")

	return req
}

func makeRequest(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	return resp
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{
			name:       "root passes through",
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "clean path passes through",
			path:       "/blog",
			wantStatus: http.StatusOK,
		},
		{
			name:       "locale prefix passes through",
			path:       "/pt/blog",
			wantStatus: http.StatusOK,
		},
		{
			name:         "trailing slash redirects",
			path:         "/blog/",
			wantStatus:   http.StatusPermanentRedirect,
			wantLocation: "/blog",
		},
		{
			name:         "locale root trailing slash redirects",
			path:         "/pt/",
			wantStatus:   http.StatusPermanentRedirect,
			wantLocation: "/pt",
		},
		{
			name:         "en prefix redirects to unprefixed",
			path:         "/en/blog",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/blog",
		},
		{
			name:         "bare en redirects to root",
			path:         "/en",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/",
		},
		{
			name:       "en inside a segment is untouched",
			path:       "/endomidface",
			wantStatus: http.StatusOK,
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			NormalizeURL(w, r, next)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
		})
	}
}

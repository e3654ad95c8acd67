// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"
)

// compressMinSize is the smallest body worth compressing. Tiny responses
// gain nothing and pay the header overhead.
const compressMinSize = 1024

var gzipWrapper = mustGzipWrapper()

func mustGzipWrapper() func(http.Handler) http.HandlerFunc {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(compressMinSize),
		gzhttp.CompressionLevel(gzip.DefaultCompression),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build gzip wrapper")
	}

	return wrapper
}

// Compress serves gzip-encoded responses to clients that accept them.
//
// The wrapper handles Accept-Encoding negotiation, Content-Length removal
// and the Vary header; already-encoded responses pass through untouched.
func Compress(w http.ResponseWriter, r *http.Request, next http.Handler) {
	gzipWrapper(next).ServeHTTP(w, r)
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package routes contains the HTTP handlers for every page and API endpoint.

Handlers return an error and are wrapped by middleware.CatchError, which
buffers their output and renders the themed error page on failure.
*/
package routes

import (
	"codeberg.org/visagefe/visagefe/core/content"
	"codeberg.org/visagefe/visagefe/core/preview"
)

var (
	store  *content.Store
	signer *preview.Signer
)

// Setup wires the handlers to their backing services.
//
// Must be called before any route is served.
func Setup(contentStore *content.Store, previewSigner *preview.Signer) {
	store = contentStore
	signer = previewSigner
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/pprof"

	"codeberg.org/visagefe/visagefe/config"
	"codeberg.org/visagefe/visagefe/core/idgen"
	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/assets"
	"codeberg.org/visagefe/visagefe/server/middleware"
	"codeberg.org/visagefe/visagefe/server/routes"
)

// DefineRoutes sets up all the routes for the application.
//
// Localized pages are registered once per locale under that locale's
// translated path, so /glossary, /pt/glossario and /es/glosario all resolve
// without per-request path translation.
func (router *Router) DefineRoutes() {
	fileServerHandler := fileServer()

	// Serve specific files from the root of the 'assets' subdirectory.
	router.Handle("GET /robots.txt", fileServerHandler)

	// Serve files from subdirectories within 'assets'.
	// Patterns ending in "/" are prefix matches.
	router.Handle("GET /css/", fileServerHandler)
	router.Handle("GET /js/", fileServerHandler)

	for _, loc := range i18n.Locales {
		// Home: the default locale lives at the bare root.
		home := "GET /{$}"
		if loc != i18n.DefaultLocale {
			home = "GET " + loc.Prefix()
		}

		router.HandleFunc(home, middleware.CatchError(routes.IndexPage))

		blog := i18n.TranslatePath("/blog", loc)
		router.HandleFunc("GET "+blog, middleware.CatchError(routes.BlogIndexPage))
		router.HandleFunc("GET "+blog+"/{slug}", middleware.CatchError(routes.BlogPostPage))

		glossaryPath := i18n.TranslatePath("/glossary", loc)
		router.HandleFunc("GET "+glossaryPath, middleware.CatchError(routes.GlossaryPage))

		timelinePath := i18n.TranslatePath("/about/timeline", loc)
		router.HandleFunc("GET "+timelinePath, middleware.CatchError(routes.TimelinePage))
	}

	// Draft previews, one route for all locales; the token carries its own.
	router.HandleFunc("GET /preview/{token}", middleware.CatchError(routes.PreviewPage))

	// JSON endpoints for the search and filter islands.
	router.HandleFunc("GET /api/search/blog", middleware.CatchError(routes.BlogSearchAPI))
	router.HandleFunc("GET /api/search/glossary", middleware.CatchError(routes.GlossarySearchAPI))
	router.HandleFunc("GET /api/timeline", middleware.CatchError(routes.TimelineAPI))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}
}

// fileServerCacheID invalidates browser caches across deployments; embedded
// assets only change when the binary does.
var fileServerCacheID = idgen.Make()

// Serve static files from embedded assets.
func fileServer() http.HandlerFunc {
	staticContentFS, err := fs.Sub(assets.FS, "assets")
	if err != nil {
		panic(fmt.Errorf("failed to create sub-filesystem for embedded 'assets' directory: %w", err))
	}

	fileServer := http.FileServer(http.FS(staticContentFS))

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "max-age=3600")
		w.Header().Set("ETag", fileServerCacheID)
		fileServer.ServeHTTP(w, r)
	}
}

func registerDebugRoutes(router *Router) {
	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
}

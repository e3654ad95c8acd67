// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"codeberg.org/visagefe/visagefe/config"
	"codeberg.org/visagefe/visagefe/server/middleware"
	"codeberg.org/visagefe/visagefe/server/middleware/limiter"
	"codeberg.org/visagefe/visagefe/server/middleware/set_request_context"
)

func (router *Router) RegisterMiddleware() {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.Compress)
	router.Use(middleware.NormalizeURL)                // handle trailing slashes and /en/ prefix removal
	router.Use(set_request_context.WithRequestContext) // needed for everything else
	router.Use(middleware.SetResponseHeaders)          // all pages need this

	if config.Global.Limiter.Enabled {
		limiter.Init()

		router.Use(limiter.Evaluate)
	}
}

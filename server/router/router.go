// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"

	"codeberg.org/visagefe/visagefe/server/middleware"
)

// Router registers routes on an embedded http.ServeMux and runs every
// request through its middleware chain before the mux resolves a handler.
type Router struct {
	*http.ServeMux

	middlewares []middleware.Middleware
}

// NewRouter returns a Router with an empty chain.
func NewRouter() *Router {
	return &Router{
		ServeMux: http.NewServeMux(),
	}
}

// Use appends m to the chain. Middlewares run in registration order, so
// outer concerns (compression, URL normalization) go in first.
func (router *Router) Use(m middleware.Middleware) {
	router.middlewares = append(router.middlewares, m)
}

// ServeHTTP folds the chain onto the mux, last middleware innermost, and
// dispatches the request through the result.
func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	next := http.Handler(router.ServeMux)
	for i := len(router.middlewares) - 1; i >= 0; i-- {
		next = middleware.Wrap(router.middlewares[i], next)
	}

	next.ServeHTTP(w, r)
}

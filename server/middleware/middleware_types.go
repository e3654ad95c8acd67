// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import "net/http"

// Middleware is one layer of the request chain. An implementation either
// answers the request itself (redirects, rate-limit rejections) or calls
// next to hand it further down.
type Middleware func(w http.ResponseWriter, r *http.Request, next http.Handler)

// Wrap fixes next as m's continuation, turning the pair into a plain
// handler. The router uses it to fold its chain onto the mux.
func Wrap(m Middleware, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m(w, r, next)
	}
}

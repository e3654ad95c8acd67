// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware chain.

Middlewares run in the order they are registered; see
router.RegisterMiddleware for the canonical ordering.
*/
package middleware

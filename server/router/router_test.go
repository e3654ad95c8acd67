// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterRunsMiddlewaresInRegistrationOrder(t *testing.T) {
	t.Parallel()

	var order []string

	tag := func(name string) func(http.ResponseWriter, *http.Request, http.Handler) {
		return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
			order = append(order, name)
			next.ServeHTTP(w, r)
		}
	}

	router := NewRouter()
	router.Use(tag("outer"))
	router.Use(tag("inner"))
	router.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterMiddlewareCanShortCircuit(t *testing.T) {
	t.Parallel()

	router := NewRouter()
	router.Use(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})

	reached := false

	router.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.False(t, reached)
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package limiter applies a per-client token bucket to incoming requests.

Each client IP gets its own rate.Limiter filled at the configured requests
per second with the configured burst. Clients idle longer than clientTTL are
forgotten to keep the map bounded.
*/
package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"codeberg.org/visagefe/visagefe/config"
)

const (
	// clientTTL is how long an idle client entry survives before cleanup.
	clientTTL = 10 * time.Minute

	cleanupInterval = time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	mu      sync.Mutex
	clients map[string]*client

	cleanupStop chan struct{}
)

// Init prepares the client table and starts the cleanup goroutine.
func Init() {
	mu.Lock()
	clients = make(map[string]*client)
	cleanupStop = make(chan struct{})
	mu.Unlock()

	go cleanupLoop(cleanupStop)

	log.Info().
		Float64("rps", config.Global.Limiter.RPS).
		Int("burst", config.Global.Limiter.Burst).
		Msg("Rate limiter enabled")
}

// Fini stops the cleanup goroutine. Safe to call when Init never ran.
func Fini() {
	mu.Lock()
	defer mu.Unlock()

	if cleanupStop != nil {
		close(cleanupStop)

		cleanupStop = nil
	}
}

// Evaluate is the middleware entry point.
func Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if !allow(getClientIP(r)) {
		w.Header().Set("Retry-After", "1")
		http.Error(w, "Too many requests", http.StatusTooManyRequests)

		return
	}

	next.ServeHTTP(w, r)
}

func allow(ip string) bool {
	mu.Lock()
	defer mu.Unlock()

	c, ok := clients[ip]
	if !ok {
		c = &client{
			limiter: rate.NewLimiter(rate.Limit(config.Global.Limiter.RPS), config.Global.Limiter.Burst),
		}
		clients[ip] = c
	}

	c.lastSeen = time.Now()

	return c.limiter.Allow()
}

func cleanupLoop(stop chan struct{}) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			cleanupExpiredClients()
		}
	}
}

func cleanupExpiredClients() {
	mu.Lock()
	defer mu.Unlock()

	cutoff := time.Now().Add(-clientTTL)

	for ip, c := range clients {
		if c.lastSeen.Before(cutoff) {
			delete(clients, ip)
		}
	}
}

// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
VisageFE is the multilingual web frontend of the Modern Face Institute.
*/
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"codeberg.org/visagefe/visagefe/config"
	"codeberg.org/visagefe/visagefe/core/audit"
	"codeberg.org/visagefe/visagefe/core/content"
	"codeberg.org/visagefe/visagefe/core/glossary"
	"codeberg.org/visagefe/visagefe/core/preview"
	"codeberg.org/visagefe/visagefe/core/timeline"
	"codeberg.org/visagefe/visagefe/i18n"
	"codeberg.org/visagefe/visagefe/server/assets"
	"codeberg.org/visagefe/visagefe/server/middleware/limiter"
	"codeberg.org/visagefe/visagefe/server/router"
	"codeberg.org/visagefe/visagefe/server/routes"
	"codeberg.org/visagefe/visagefe/server/template"
)

const (
	// Values for http.Server timeouts.
	readHeaderTimeout time.Duration = 15 * time.Second
	readTimeout       time.Duration = 15 * time.Second
	writeTimeout      time.Duration = 10 * time.Second
	idleTimeout       time.Duration = 30 * time.Second

	serverShutdownDeadline time.Duration = 5 * time.Second
)

// embeddedContent holds static assets, view templates, translation catalogs
// and the editorial content the site serves.
//
//go:embed assets/css assets/js assets/robots.txt assets/views
//go:embed data/paths.yaml data/timeline.yaml data/glossary
//go:embed all:content all:po
var embeddedContent embed.FS

// init assigns the embedded filesystem to the exported assets.FS variable.
//
//nolint:gochecknoinits // this is a good use of init()
func init() {
	assets.FS = embeddedContent
}

// main is the entry point of the application.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

// run orchestrates the application startup and graceful shutdown.
func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := i18n.Setup(); err != nil {
		return fmt.Errorf("failed to initialize i18n engine: %w", err)
	}

	log.Info().Msg("Initialized i18n engine")

	if err := template.Setup(); err != nil {
		return fmt.Errorf("failed to load view templates: %w", err)
	}

	if err := glossary.Setup(); err != nil {
		return fmt.Errorf("failed to load glossary data: %w", err)
	}

	if err := timeline.Setup(); err != nil {
		return fmt.Errorf("failed to load timeline data: %w", err)
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()

	store, err := loadContent(watchCtx)
	if err != nil {
		return err
	}

	signer, err := preview.Setup()
	if err != nil {
		return fmt.Errorf("failed to initialize preview signing: %w", err)
	}

	routes.Setup(store, signer)

	router := router.NewRouter()
	router.DefineRoutes()
	router.RegisterMiddleware()

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	// Channel to listen for server errors
	serverErrors := make(chan error, 1)

	go func() {
		listener, err := chooseListener()
		if err != nil {
			serverErrors <- fmt.Errorf("failed to create listener: %w", err)

			return
		}

		serverErrors <- server.Serve(listener)
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until a shutdown signal or a server error is received
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case s := <-quit:
		log.Info().Str("signal", s.String()).Msg("Shutdown signal received")
		log.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), serverShutdownDeadline)

		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	limiter.Fini()

	log.Info().Msg("Server exited gracefully")

	return nil
}

// loadContent builds the blog store, either from the embedded corpus or from
// a directory on disk when one is configured.
func loadContent(ctx context.Context) (*content.Store, error) {
	store := content.NewStore()

	dir := config.Global.Content.Dir
	if dir == "" {
		if err := store.Load(embeddedContent, "content/blog"); err != nil {
			return nil, fmt.Errorf("failed to load embedded content: %w", err)
		}

		return store, nil
	}

	parent, base := filepath.Split(filepath.Clean(dir))
	if parent == "" {
		parent = "."
	}

	if err := store.Load(os.DirFS(filepath.Clean(parent)), base); err != nil {
		return nil, fmt.Errorf("failed to load content from %s: %w", dir, err)
	}

	if config.Global.Content.Watch {
		go func() {
			if err := store.Watch(ctx, dir); err != nil {
				log.Err(err).Str("dir", dir).Msg("Content watcher stopped")
			}
		}()
	}

	return store, nil
}

func chooseListener() (net.Listener, error) {
	addr := net.JoinHostPort(config.Global.Basic.Host, config.Global.Basic.Port)

	tcpListener, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start TCP listener on %v: %w", addr, err)
	}

	addr = tcpListener.Addr().String()

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		_ = tcpListener.Close()

		return nil, fmt.Errorf("failed to parse listener address %q: %w", addr, err)
	}

	// Log the address and convenient URL for local development
	log.Info().
		Str("address", addr).
		Str("port", port).
		Str("url", fmt.Sprintf("http://localhost:%v/", port)).
		Msg("Listening on address")

	return tcpListener, nil
}

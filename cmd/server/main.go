// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

// Package main is the entry point for the Gustus server.
//
// Gustus profiles design taste: clients answer a questionnaire of image
// quads (pick two favorites and one least favorite per quad), and the
// server scores the answers into a six-axis taste profile plus per-category
// style reports.
//
// Startup order:
//
//  1. Configuration: layered load via Koanf v2 (defaults, YAML file, GUSTUS_* env)
//  2. Logging: zerolog global logger
//  3. Storage: BadgerDB for sessions, selections, and profiles
//  4. Catalog: the quad library (built-in or YAML file)
//  5. Domain services: selection recorder, scoring service, report deriver
//  6. HTTP server: Chi REST API under a suture supervisor tree
//
// The server shuts down gracefully on SIGINT and SIGTERM: the listener
// stops accepting connections, in-flight requests get the configured
// timeout to finish, and the Badger database closes last.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlindqvist/gustus/internal/api"
	"github.com/mlindqvist/gustus/internal/catalog"
	"github.com/mlindqvist/gustus/internal/config"
	"github.com/mlindqvist/gustus/internal/logging"
	"github.com/mlindqvist/gustus/internal/report"
	"github.com/mlindqvist/gustus/internal/scoring"
	"github.com/mlindqvist/gustus/internal/selection"
	"github.com/mlindqvist/gustus/internal/store"
	"github.com/mlindqvist/gustus/internal/supervisor"
	"github.com/mlindqvist/gustus/internal/supervisor/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.Init(cfg.Logging.ToLogging())
	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Gustus")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage opens first and closes last.
	db, err := store.Open(cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	library, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logging.Info().
		Int("quads", library.Size()).
		Str("path", cfg.Catalog.Path).
		Msg("Catalog loaded")

	sessions := store.NewSessionStore(db)
	selections := store.NewSelectionStore(db)
	profiles := store.NewProfileStore(db)

	recorder := selection.NewRecorder(library, selections, sessions)

	aggregator, err := scoring.NewAggregator(library, cfg.Scoring)
	if err != nil {
		return fmt.Errorf("scoring config: %w", err)
	}
	scoringSvc := scoring.NewService(library, aggregator, selections, sessions, profiles)
	deriver := report.NewDeriver(library)

	readiness := func() error {
		if db.IsClosed() {
			return errors.New("database closed")
		}
		return nil
	}

	handler := api.NewHandler(library, recorder, scoringSvc, deriver, sessions, readiness)
	mw := api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Server.CORSOrigins,
		RateLimitRequests:  cfg.Server.RateLimitReqs,
		RateLimitWindow:    cfg.Server.RateLimitWindow,
		RateLimitDisabled:  cfg.Server.RateLimitDisabled,
	})
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddStorageService(store.NewGCService(db, cfg.Storage))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor closes the channel.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped gracefully")
	return nil
}

// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

// Package api provides the HTTP surface: Chi routing, middleware, and the
// handlers for sessions, selections, profiles, reports, and the quad catalog.
package api

import (
	"time"

	"github.com/mlindqvist/gustus/internal/catalog"
	"github.com/mlindqvist/gustus/internal/report"
	"github.com/mlindqvist/gustus/internal/scoring"
	"github.com/mlindqvist/gustus/internal/selection"
	"github.com/mlindqvist/gustus/internal/session"
)

// Handler holds the dependencies of all API handlers.
type Handler struct {
	library  *catalog.Library
	recorder *selection.Recorder
	scoring  *scoring.Service
	deriver  *report.Deriver
	sessions session.Store

	// readiness reports whether the storage layer can serve traffic. nil
	// means always ready.
	readiness func() error

	startedAt time.Time
}

// NewHandler creates the API handler set.
func NewHandler(
	library *catalog.Library,
	recorder *selection.Recorder,
	scoringSvc *scoring.Service,
	deriver *report.Deriver,
	sessions session.Store,
	readiness func() error,
) *Handler {
	return &Handler{
		library:   library,
		recorder:  recorder,
		scoring:   scoringSvc,
		deriver:   deriver,
		sessions:  sessions,
		readiness: readiness,
		startedAt: time.Now(),
	}
}

// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the HTTP routing tree.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router over the given handlers and middleware.
func NewRouter(handler *Handler, mw *Middleware) *Router {
	if mw == nil {
		mw = NewMiddleware(nil)
	}
	return &Router{handler: handler, middleware: mw}
}

// Setup builds the routing tree with the full middleware stack.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(rt.middleware.CORS())

	// Prometheus scrape endpoint, outside the API rate limits.
	r.Handle("/metrics", promhttp.Handler())

	// Health endpoints get a permissive limiter so monitoring probes never
	// exhaust the API budget.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(rt.middleware.RateLimitHealth())
		r.Get("/", rt.handler.Health)
		r.Get("/live", rt.handler.HealthLive)
		r.Get("/ready", rt.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.middleware.RateLimit())
		r.Use(PrometheusMetrics)

		// Catalog surface.
		r.Get("/categories", rt.handler.ListCategories)
		r.Get("/quads", rt.handler.ListQuads)
		r.Get("/quads/{quadID}", rt.handler.GetQuad)

		// Session lifecycle and selections.
		r.Post("/sessions", rt.handler.CreateSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", rt.handler.GetSession)
			r.Get("/resume", rt.handler.Resume)
			r.Post("/complete", rt.handler.CompleteSession)
			r.Get("/profile", rt.handler.GetProfile)

			r.Get("/selections", rt.handler.ListSelections)
			r.Put("/selections/{quadID}", rt.handler.UpsertSelection)
			r.Get("/selections/{quadID}", rt.handler.GetSelection)

			r.Get("/report/categories", rt.handler.ReportCategories)
			r.Get("/report/overall", rt.handler.ReportOverall)
		})
	})

	return r
}

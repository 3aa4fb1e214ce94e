// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package api

import (
	"net/http"
	"time"
)

// healthResponse is the payload for the health endpoints.
type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	CatalogQuads  int    `json:"catalog_quads"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, healthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		CatalogQuads:  h.library.Size(),
	})
}

// HealthLive handles GET /api/v1/health/live. Liveness only says the process
// is serving; readiness covers storage.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "live"})
}

// HealthReady handles GET /api/v1/health/ready. It fails while the storage
// layer cannot serve traffic.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.readiness != nil {
		if err := h.readiness(); err != nil {
			respondError(w, http.StatusServiceUnavailable, CodeInternalError, "Storage not ready", err)
			return
		}
	}
	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"})
}

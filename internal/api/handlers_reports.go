// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlindqvist/gustus/internal/metrics"
	"github.com/mlindqvist/gustus/internal/session"
)

// ReportCategories handles GET /api/v1/sessions/{sessionID}/report/categories.
// It returns one row per category in fixed order; categories without a
// representative selection carry neutral defaults rather than being omitted.
func (h *Handler) ReportCategories(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	ctx := r.Context()

	if _, err := h.sessions.GetSession(ctx, sessionID); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, CodeNotFound, "Session not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to load session", err)
		return
	}

	selections, err := h.recorder.List(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to list selections", err)
		return
	}

	metrics.RecordReport("categories")
	respondSuccess(w, http.StatusOK, h.deriver.AllCategoryMetrics(selections))
}

// ReportOverall handles GET /api/v1/sessions/{sessionID}/report/overall.
// Unanswered categories are excluded from the averages, not defaulted; a
// session with no answered categories still gets a neutral summary.
func (h *Handler) ReportOverall(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	ctx := r.Context()

	if _, err := h.sessions.GetSession(ctx, sessionID); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, CodeNotFound, "Session not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to load session", err)
		return
	}

	selections, err := h.recorder.List(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to list selections", err)
		return
	}

	metrics.RecordReport("overall")
	respondSuccess(w, http.StatusOK, h.deriver.OverallMetricsFor(selections))
}

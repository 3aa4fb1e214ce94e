// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlindqvist/gustus/internal/catalog"
	"github.com/mlindqvist/gustus/internal/metrics"
	"github.com/mlindqvist/gustus/internal/selection"
	"github.com/mlindqvist/gustus/internal/session"
)

// UpsertSelection handles PUT /api/v1/sessions/{sessionID}/selections/{quadID}.
//
// The write fully replaces any prior selection for the quad, so revisiting
// and client retries are both safe. A skipped body discards any supplied
// indices; the recorder enforces that server-side.
func (h *Handler) UpsertSelection(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	quadID := chi.URLParam(r, "quadID")

	var in selection.Input
	if err := decodeBody(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, CodeValidationError, "Malformed request body", err)
		return
	}
	if apiErr := validateRequest(&in); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	sel, err := h.recorder.CreateOrUpdate(r.Context(), sessionID, quadID, in)
	switch {
	case errors.Is(err, catalog.ErrQuadNotFound):
		metrics.RecordSelection(metrics.OutcomeRejected)
		respondError(w, http.StatusNotFound, CodeNotFound, "Quad not found", nil)
		return
	case errors.Is(err, session.ErrSessionNotFound):
		metrics.RecordSelection(metrics.OutcomeRejected)
		respondError(w, http.StatusNotFound, CodeNotFound, "Session not found", nil)
		return
	case errors.Is(err, selection.ErrSessionFrozen):
		metrics.RecordSelection(metrics.OutcomeRejected)
		respondError(w, http.StatusConflict, CodeSessionComplete,
			"Session is complete; selections are frozen", nil)
		return
	case errors.Is(err, selection.ErrIndexOutOfRange),
		errors.Is(err, selection.ErrDuplicateIndex):
		metrics.RecordSelection(metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, CodeValidationError, err.Error(), nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to record selection", err)
		return
	}

	if sel.Skipped {
		metrics.RecordSelection(metrics.OutcomeSkipped)
	} else {
		metrics.RecordSelection(metrics.OutcomeAnswered)
	}

	respondSuccess(w, http.StatusOK, sel)
}

// GetSelection handles GET /api/v1/sessions/{sessionID}/selections/{quadID}.
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	quadID := chi.URLParam(r, "quadID")

	sel, err := h.recorder.Get(r.Context(), sessionID, quadID)
	if errors.Is(err, selection.ErrSelectionNotFound) {
		respondError(w, http.StatusNotFound, CodeNotFound, "Selection not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to load selection", err)
		return
	}

	respondSuccess(w, http.StatusOK, sel)
}

// ListSelections handles GET /api/v1/sessions/{sessionID}/selections.
func (h *Handler) ListSelections(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	selections, err := h.recorder.List(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to list selections", err)
		return
	}
	if selections == nil {
		selections = []selection.Selection{}
	}

	respondSuccess(w, http.StatusOK, selections)
}

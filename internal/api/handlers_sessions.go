// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mlindqvist/gustus/internal/logging"
	"github.com/mlindqvist/gustus/internal/metrics"
	"github.com/mlindqvist/gustus/internal/scoring"
	"github.com/mlindqvist/gustus/internal/session"
)

// CreateSession handles POST /api/v1/sessions. It mints a session ID and
// starts a new questionnaire run.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := &session.Session{
		ID:        uuid.New().String(),
		Status:    session.StatusInProgress,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.sessions.CreateSession(r.Context(), sess); err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to create session", err)
		return
	}

	metrics.SessionsCreated.Inc()
	logging.Ctx(r.Context()).Info().Str("session_id", sess.ID).Msg("Session created")

	respondSuccess(w, http.StatusCreated, sess)
}

// GetSession handles GET /api/v1/sessions/{sessionID}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := h.sessions.GetSession(r.Context(), sessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, CodeNotFound, "Session not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to load session", err)
		return
	}

	respondSuccess(w, http.StatusOK, sess)
}

// resumeResponse is the payload for the resume endpoint.
type resumeResponse struct {
	// ResumeIndex is the catalog position of the first unresolved quad.
	// Equal to TotalQuads when every quad is resolved.
	ResumeIndex int `json:"resume_index"`

	// TotalQuads is the catalog size.
	TotalQuads int `json:"total_quads"`

	// Complete reports whether every quad has a resolved selection.
	Complete bool `json:"complete"`
}

// Resume handles GET /api/v1/sessions/{sessionID}/resume. It tells a
// returning client where to pick up the questionnaire.
func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
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

	index, err := h.recorder.ResumeIndex(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to compute resume index", err)
		return
	}

	respondSuccess(w, http.StatusOK, resumeResponse{
		ResumeIndex: index,
		TotalQuads:  h.library.Size(),
		Complete:    index == h.library.Size(),
	})
}

// CompleteSession handles POST /api/v1/sessions/{sessionID}/complete. It
// aggregates the profile and freezes the session. Retries are idempotent.
func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	ctx := r.Context()

	start := time.Now()
	profile, err := h.scoring.CompleteSession(ctx, sessionID)
	metrics.RecordProfileComputation(time.Since(start), err)

	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, "Session not found", nil)
		return
	case errors.Is(err, session.ErrSessionIncomplete):
		respondError(w, http.StatusConflict, CodeSessionIncomplete,
			"Every quad needs a selection or an explicit skip before completion", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to complete session", err)
		return
	}

	metrics.SessionsCompleted.Inc()

	respondSuccess(w, http.StatusOK, profile)
}

// GetProfile handles GET /api/v1/sessions/{sessionID}/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	profile, err := h.scoring.GetProfile(r.Context(), sessionID)
	if errors.Is(err, scoring.ErrProfileNotFound) {
		respondError(w, http.StatusNotFound, CodeNotFound, "No profile for this session", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to load profile", err)
		return
	}

	respondSuccess(w, http.StatusOK, profile)
}

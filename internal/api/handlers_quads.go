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
)

// quadView is the client-facing quad shape. Scoring attributes stay
// server-side so clients cannot bias answers toward target axes.
type quadView struct {
	ID       string                     `json:"id"`
	Category catalog.Category           `json:"category"`
	Images   [catalog.QuadImages]string `json:"images"`
}

func toQuadView(q *catalog.Quad) quadView {
	return quadView{ID: q.ID, Category: q.Category, Images: q.Images}
}

// ListQuads handles GET /api/v1/quads. An optional ?category= filter accepts
// either the category name or its short code.
func (h *Handler) ListQuads(w http.ResponseWriter, r *http.Request) {
	var quads []*catalog.Quad

	if filter := r.URL.Query().Get("category"); filter != "" {
		c, err := catalog.ParseCategory(filter)
		if err != nil {
			respondError(w, http.StatusBadRequest, CodeValidationError, "Unknown category", nil)
			return
		}
		quads = h.library.ListByCategory(c)
	} else {
		quads = h.library.Quads()
	}

	views := make([]quadView, len(quads))
	for i, q := range quads {
		views[i] = toQuadView(q)
	}

	respondSuccess(w, http.StatusOK, views)
}

// GetQuad handles GET /api/v1/quads/{quadID}.
func (h *Handler) GetQuad(w http.ResponseWriter, r *http.Request) {
	quadID := chi.URLParam(r, "quadID")

	q, err := h.library.Lookup(quadID)
	if errors.Is(err, catalog.ErrQuadNotFound) {
		respondError(w, http.StatusNotFound, CodeNotFound, "Quad not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to load quad", err)
		return
	}

	respondSuccess(w, http.StatusOK, toQuadView(q))
}

// ListCategories handles GET /api/v1/categories. The fixed ordering here is
// the questionnaire ordering.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	type categoryView struct {
		Name  string `json:"name"`
		Code  string `json:"code"`
		Quads int    `json:"quads"`
	}

	categories := catalog.Categories()
	views := make([]categoryView, len(categories))
	for i, c := range categories {
		views[i] = categoryView{
			Name:  c.String(),
			Code:  c.Code(),
			Quads: len(h.library.ListByCategory(c)),
		}
	}

	respondSuccess(w, http.StatusOK, views)
}

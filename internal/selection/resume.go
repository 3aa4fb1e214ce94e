// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package selection

import (
	"context"

	"github.com/mlindqvist/gustus/internal/catalog"
)

// ByQuad indexes a session's selections by quad ID for order-independent lookup.
func ByQuad(selections []Selection) map[string]*Selection {
	byQuad := make(map[string]*Selection, len(selections))
	for i := range selections {
		byQuad[selections[i].QuadID] = &selections[i]
	}
	return byQuad
}

// ResumeIndexOf computes the catalog position at which an in-progress
// session should continue: the index of the first quad, in fixed catalog
// order, that has no selection or an unresolved one. When every quad is
// resolved it returns the catalog size, meaning the session is
// complete-eligible.
func ResumeIndexOf(library *catalog.Library, selections []Selection) int {
	byQuad := ByQuad(selections)

	for i, quad := range library.Quads() {
		sel, ok := byQuad[quad.ID]
		if !ok || !sel.Resolved() {
			return i
		}
	}
	return library.Size()
}

// CompleteOf reports whether every quad in the library has a resolved
// selection. Quads the client never opened count as unresolved.
func CompleteOf(library *catalog.Library, selections []Selection) bool {
	return ResumeIndexOf(library, selections) == library.Size()
}

// ResumeIndex loads the session's selections and computes its resume point.
func (r *Recorder) ResumeIndex(ctx context.Context, sessionID string) (int, error) {
	selections, err := r.store.ListSelections(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return ResumeIndexOf(r.library, selections), nil
}

// IsComplete loads the session's selections and reports complete-eligibility.
func (r *Recorder) IsComplete(ctx context.Context, sessionID string) (bool, error) {
	selections, err := r.store.ListSelections(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return CompleteOf(r.library, selections), nil
}

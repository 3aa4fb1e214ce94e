// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package selection

import (
	"context"
	"fmt"
	"time"

	"github.com/mlindqvist/gustus/internal/catalog"
	"github.com/mlindqvist/gustus/internal/logging"
)

// StatusChecker reports whether a session has been marked complete.
// Completed sessions freeze their selections against further writes.
type StatusChecker interface {
	SessionComplete(ctx context.Context, sessionID string) (bool, error)
}

// Recorder validates and persists selections. All write-side invariants live
// here rather than in callers: skip forcing, index range and distinctness,
// quad existence, and the frozen-session check.
type Recorder struct {
	library *catalog.Library
	store   Store
	status  StatusChecker
	now     func() time.Time
}

// NewRecorder creates a recorder over the given library and stores.
func NewRecorder(library *catalog.Library, store Store, status StatusChecker) *Recorder {
	return &Recorder{
		library: library,
		store:   store,
		status:  status,
		now:     time.Now,
	}
}

// CreateOrUpdate upserts the selection for (sessionID, quadID).
//
// Skip semantics are enforced here: when in.Skipped is true, all three
// position indices are discarded before persisting, regardless of what was
// supplied. A later call for the same key fully replaces the prior value.
func (r *Recorder) CreateOrUpdate(ctx context.Context, sessionID, quadID string, in Input) (*Selection, error) {
	if _, err := r.library.Lookup(quadID); err != nil {
		return nil, err
	}

	frozen, err := r.status.SessionComplete(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("check session status: %w", err)
	}
	if frozen {
		return nil, ErrSessionFrozen
	}

	sel := &Selection{
		SessionID: sessionID,
		QuadID:    quadID,
		Skipped:   in.Skipped,
		UpdatedAt: r.now().UTC(),
	}

	if in.Skipped {
		// A skipped quad never carries indices, even if the client sent them.
		if in.Favorite1 != nil || in.Favorite2 != nil || in.LeastFavorite != nil {
			logging.Ctx(ctx).Debug().
				Str("session_id", sessionID).
				Str("quad_id", quadID).
				Msg("Discarding position indices on skipped selection")
		}
	} else {
		if err := validateIndices(in); err != nil {
			return nil, err
		}
		sel.Favorite1 = in.Favorite1
		sel.Favorite2 = in.Favorite2
		sel.LeastFavorite = in.LeastFavorite
	}

	if err := r.store.UpsertSelection(ctx, sel); err != nil {
		return nil, fmt.Errorf("persist selection: %w", err)
	}

	return sel, nil
}

// Get returns the recorded selection for (sessionID, quadID).
func (r *Recorder) Get(ctx context.Context, sessionID, quadID string) (*Selection, error) {
	return r.store.GetSelection(ctx, sessionID, quadID)
}

// List returns all selections recorded for a session.
func (r *Recorder) List(ctx context.Context, sessionID string) ([]Selection, error) {
	return r.store.ListSelections(ctx, sessionID)
}

// validateIndices checks range and distinctness of the supplied positions.
func validateIndices(in Input) error {
	var seen [catalog.QuadImages]bool

	for _, role := range []struct {
		name  string
		index *int
	}{
		{"favorite1", in.Favorite1},
		{"favorite2", in.Favorite2},
		{"least_favorite", in.LeastFavorite},
	} {
		if role.index == nil {
			continue
		}
		i := *role.index
		if i < 0 || i >= catalog.QuadImages {
			return fmt.Errorf("%w: %s = %d", ErrIndexOutOfRange, role.name, i)
		}
		if seen[i] {
			return fmt.Errorf("%w: position %d", ErrDuplicateIndex, i)
		}
		seen[i] = true
	}

	return nil
}

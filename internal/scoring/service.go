// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package scoring

import (
	"context"
	"fmt"

	"github.com/mlindqvist/gustus/internal/catalog"
	"github.com/mlindqvist/gustus/internal/logging"
	"github.com/mlindqvist/gustus/internal/selection"
	"github.com/mlindqvist/gustus/internal/session"
)

// Service orchestrates session completion: it verifies eligibility,
// aggregates the profile, and persists profile plus session status as one
// atomic unit through the profile store.
type Service struct {
	library    *catalog.Library
	aggregator *Aggregator
	selections selection.Store
	sessions   session.Store
	profiles   Store
}

// NewService wires the completion service.
func NewService(
	library *catalog.Library,
	aggregator *Aggregator,
	selections selection.Store,
	sessions session.Store,
	profiles Store,
) *Service {
	return &Service{
		library:    library,
		aggregator: aggregator,
		selections: selections,
		sessions:   sessions,
		profiles:   profiles,
	}
}

// CompleteSession finalizes a session.
//
// Calling it again on an already-complete session returns the persisted
// profile unchanged, so client retries are safe. An in-progress session with
// unresolved quads fails with ErrSessionIncomplete. Persistence failures
// propagate to the caller; because the store writes profile and status in a
// single transaction, a failure leaves the session fully in progress.
func (s *Service) CompleteSession(ctx context.Context, sessionID string) (*Profile, error) {
	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Complete() {
		// Idempotent completion: the profile was computed exactly once; hand
		// back the persisted copy.
		return s.profiles.GetProfile(ctx, sessionID)
	}

	selections, err := s.selections.ListSelections(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load selections: %w", err)
	}

	if !selection.CompleteOf(s.library, selections) {
		return nil, session.ErrSessionIncomplete
	}

	profile := s.aggregator.Aggregate(sessionID, selections)

	if err := s.profiles.SaveProfileAndCompleteSession(ctx, profile); err != nil {
		return nil, fmt.Errorf("persist profile: %w", err)
	}

	logging.Ctx(ctx).Info().
		Str("session_id", sessionID).
		Int("completed_quads", profile.CompletedQuads).
		Int("skipped_quads", profile.SkippedQuads).
		Msg("Session completed")

	return profile, nil
}

// GetProfile returns the persisted profile for a session.
func (s *Service) GetProfile(ctx context.Context, sessionID string) (*Profile, error) {
	return s.profiles.GetProfile(ctx, sessionID)
}

// Recompute re-runs aggregation over the current selection set without
// persisting. Debug and test surface only; given identical inputs it must
// match the persisted profile's scores exactly.
func (s *Service) Recompute(ctx context.Context, sessionID string) (*Profile, error) {
	selections, err := s.selections.ListSelections(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load selections: %w", err)
	}
	return s.aggregator.Aggregate(sessionID, selections), nil
}

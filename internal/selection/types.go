// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

// Package selection implements the durable, resumable per-(session, quad)
// choice state: which image was favorite, second favorite, least favorite,
// or whether the quad was skipped.
//
// The recorder enforces the skip invariant (a skipped selection never
// carries position indices) and index distinctness server-side, so callers
// cannot leak inconsistent state into aggregation. Writes are upserts: a
// later call for the same (session, quad) key fully replaces the prior
// value, which supports revisiting and clearing answers. Two concurrent
// writes to the same key race last-write-wins; one human answers a session
// serially, so the only property that matters is upsert idempotence under
// client retry.
package selection

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for selection operations.
var (
	// ErrSelectionNotFound indicates no selection exists for the key.
	ErrSelectionNotFound = errors.New("selection not found")

	// ErrIndexOutOfRange indicates a position index outside {0..3}.
	ErrIndexOutOfRange = errors.New("position index out of range [0, 3]")

	// ErrDuplicateIndex indicates the same image position used for more than
	// one of favorite1/favorite2/leastFavorite.
	ErrDuplicateIndex = errors.New("favorite1, favorite2, and leastFavorite must be distinct")

	// ErrSessionFrozen indicates a write against a completed session.
	ErrSessionFrozen = errors.New("session is complete; selections are frozen")
)

// Selection is the persisted choice state for one (session, quad) pair.
// Position indices reference the quad's image positions 0-3; nil means unset.
type Selection struct {
	// SessionID identifies the questionnaire session.
	SessionID string `json:"session_id"`

	// QuadID identifies the quad the selection answers.
	QuadID string `json:"quad_id"`

	// Favorite1 is the position of the most preferred image, or nil.
	Favorite1 *int `json:"favorite1,omitempty"`

	// Favorite2 is the position of the second preference, or nil.
	Favorite2 *int `json:"favorite2,omitempty"`

	// LeastFavorite is the position of the least preferred image, or nil.
	LeastFavorite *int `json:"least_favorite,omitempty"`

	// Skipped marks the quad as deliberately passed over. When true, all
	// three indices are unset; the recorder enforces this.
	Skipped bool `json:"skipped"`

	// UpdatedAt is the time of the last upsert.
	UpdatedAt time.Time `json:"updated_at"`
}

// Resolved reports whether the selection needs no further input: either the
// quad was skipped, or all three positions are set. Unresolved selections
// are treated the same as missing ones for resume and completion.
func (s *Selection) Resolved() bool {
	if s.Skipped {
		return true
	}
	return s.Favorite1 != nil && s.Favorite2 != nil && s.LeastFavorite != nil
}

// Answered reports whether the selection is resolved and not skipped, i.e.
// it contributes to profile aggregation.
func (s *Selection) Answered() bool {
	return s.Resolved() && !s.Skipped
}

// Input carries the caller-supplied fields of an upsert. The recorder, not
// the caller, applies skip semantics and validation.
type Input struct {
	Favorite1     *int `json:"favorite1" validate:"omitempty,gte=0,lte=3"`
	Favorite2     *int `json:"favorite2" validate:"omitempty,gte=0,lte=3"`
	LeastFavorite *int `json:"least_favorite" validate:"omitempty,gte=0,lte=3"`
	Skipped       bool `json:"skipped"`
}

// Store is the persistence surface the recorder writes through.
type Store interface {
	// UpsertSelection fully replaces any prior value for the selection's
	// (session, quad) key.
	UpsertSelection(ctx context.Context, sel *Selection) error

	// GetSelection returns the selection for the key, or ErrSelectionNotFound.
	GetSelection(ctx context.Context, sessionID, quadID string) (*Selection, error)

	// ListSelections returns all selections recorded for a session, in no
	// particular order.
	ListSelections(ctx context.Context, sessionID string) ([]Selection, error)
}

// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

// Package session defines questionnaire session lifecycle state.
//
// A session moves through exactly two states: in progress, then complete.
// Selections may only be written while in progress; completion freezes them
// and is coupled atomically to profile persistence (see the store package).
package session

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for session operations.
var (
	// ErrSessionNotFound indicates no session exists with the given ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionAlreadyComplete indicates a repeat completion attempt.
	ErrSessionAlreadyComplete = errors.New("session already complete")

	// ErrSessionIncomplete indicates completion was requested before every
	// quad had a resolved selection.
	ErrSessionIncomplete = errors.New("session has unresolved quads")
)

// Status is the session lifecycle state.
type Status string

const (
	// StatusInProgress marks a session accepting selection writes.
	StatusInProgress Status = "in_progress"

	// StatusComplete marks a finished session with a persisted profile.
	StatusComplete Status = "complete"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusInProgress || s == StatusComplete
}

// Session is one client's questionnaire run.
type Session struct {
	// ID is the session identifier (a UUID minted at creation).
	ID string `json:"id"`

	// Status is the lifecycle state.
	Status Status `json:"status"`

	// CreatedAt is the session creation time.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is set when the session transitions to complete.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Complete reports whether the session has been marked complete.
func (s *Session) Complete() bool {
	return s.Status == StatusComplete
}

// Validate checks structural invariants before persistence.
func (s *Session) Validate() error {
	if s.ID == "" {
		return errors.New("session id must not be empty")
	}
	if !s.Status.Valid() {
		return fmt.Errorf("invalid session status %q", s.Status)
	}
	return nil
}

// Store is the persistence surface for sessions.
type Store interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, s *Session) error

	// GetSession returns the session, or ErrSessionNotFound.
	GetSession(ctx context.Context, id string) (*Session, error)
}

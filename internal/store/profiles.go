// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/mlindqvist/gustus/internal/scoring"
	"github.com/mlindqvist/gustus/internal/session"
)

// ProfileStore implements scoring.Store using BadgerDB.
type ProfileStore struct {
	db  *badger.DB
	now func() time.Time
}

// NewProfileStore creates a BadgerDB-backed profile store.
func NewProfileStore(db *badger.DB) *ProfileStore {
	return &ProfileStore{db: db, now: time.Now}
}

// SaveProfileAndCompleteSession persists the profile and flips the session
// to complete inside a single transaction. If any step fails the whole
// transaction rolls back, so the session is never complete without a profile
// and never keeps accepting writes after a profile exists.
func (s *ProfileStore) SaveProfileAndCompleteSession(ctx context.Context, p *scoring.Profile) error {
	profileData, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		sessionKey := []byte(sessionKeyPrefix + p.SessionID)
		item, err := txn.Get(sessionKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return session.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		var sess session.Session
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sess)
		}); err != nil {
			return fmt.Errorf("unmarshal session: %w", err)
		}

		if sess.Status != session.StatusComplete {
			completedAt := s.now()
			sess.Status = session.StatusComplete
			sess.CompletedAt = &completedAt
		}

		sessionData, err := json.Marshal(&sess)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}

		if err := txn.Set([]byte(profileKeyPrefix+p.SessionID), profileData); err != nil {
			return fmt.Errorf("set profile: %w", err)
		}
		return txn.Set(sessionKey, sessionData)
	})
}

// GetProfile retrieves the persisted profile for a session.
func (s *ProfileStore) GetProfile(ctx context.Context, sessionID string) (*scoring.Profile, error) {
	var p scoring.Profile

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(profileKeyPrefix + sessionID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return scoring.ErrProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/mlindqvist/gustus/internal/session"
)

// ErrSessionExists indicates a create collided with an existing session ID.
var ErrSessionExists = errors.New("session already exists")

// SessionStore implements session.Store using BadgerDB.
type SessionStore struct {
	db *badger.DB
}

// NewSessionStore creates a BadgerDB-backed session store.
func NewSessionStore(db *badger.DB) *SessionStore {
	return &SessionStore{db: db}
}

// CreateSession persists a new session. Session IDs are minted as UUIDs, so
// a collision indicates a caller bug and is rejected rather than overwritten.
func (s *SessionStore) CreateSession(ctx context.Context, sess *session.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(sessionKeyPrefix + sess.ID)
		_, err := txn.Get(key)
		if err == nil {
			return ErrSessionExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check session: %w", err)
		}
		return txn.Set(key, data)
	})
}

// SessionComplete reports whether the session is marked complete. This
// satisfies the selection recorder's status check so completed sessions
// freeze their selections.
func (s *SessionStore) SessionComplete(ctx context.Context, id string) (bool, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return false, err
	}
	return sess.Complete(), nil
}

// GetSession retrieves a session by ID.
func (s *SessionStore) GetSession(ctx context.Context, id string) (*session.Session, error) {
	var sess session.Session

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return session.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sess)
		})
	})
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

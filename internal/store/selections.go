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

	"github.com/mlindqvist/gustus/internal/selection"
)

// SelectionStore implements selection.Store using BadgerDB.
type SelectionStore struct {
	db *badger.DB
}

// NewSelectionStore creates a BadgerDB-backed selection store.
func NewSelectionStore(db *badger.DB) *SelectionStore {
	return &SelectionStore{db: db}
}

func selectionKey(sessionID, quadID string) []byte {
	return []byte(selectionKeyPrefix + sessionID + ":" + quadID)
}

// UpsertSelection writes the selection, replacing any prior record for the
// same session and quad. Last write wins; retries are idempotent.
func (s *SelectionStore) UpsertSelection(ctx context.Context, sel *selection.Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(selectionKey(sel.SessionID, sel.QuadID), data)
	})
}

// GetSelection retrieves the selection for a session and quad.
func (s *SelectionStore) GetSelection(ctx context.Context, sessionID, quadID string) (*selection.Selection, error) {
	var sel selection.Selection

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(selectionKey(sessionID, quadID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return selection.ErrSelectionNotFound
		}
		if err != nil {
			return fmt.Errorf("get selection: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sel)
		})
	})
	if err != nil {
		return nil, err
	}

	return &sel, nil
}

// ListSelections returns all selections for a session. A session with no
// selections yields an empty slice, not an error.
func (s *SelectionStore) ListSelections(ctx context.Context, sessionID string) ([]selection.Selection, error) {
	var out []selection.Selection

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(selectionKeyPrefix + sessionID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var sel selection.Selection
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &sel)
			})
			if err != nil {
				return fmt.Errorf("unmarshal selection: %w", err)
			}
			out = append(out, sel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

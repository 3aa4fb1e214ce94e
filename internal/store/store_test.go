// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/mlindqvist/gustus/internal/scoring"
	"github.com/mlindqvist/gustus/internal/selection"
	"github.com/mlindqvist/gustus/internal/session"
)

// openTestDB opens an in-memory BadgerDB instance for tests.
func openTestDB(t *testing.T) *badger.DB {
	t.Helper()

	cfg := DefaultConfig()
	cfg.InMemory = true
	cfg.Path = ""

	db, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return db
}

func newTestSession(id string) *session.Session {
	return &session.Session{
		ID:        id,
		Status:    session.StatusInProgress,
		CreatedAt: time.Now().UTC(),
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"in-memory without path", func(c *Config) { c.InMemory = true; c.Path = "" }, false},
		{"empty path on disk", func(c *Config) { c.Path = "" }, true},
		{"zero gc interval", func(c *Config) { c.GCInterval = 0 }, true},
		{"gc ratio zero", func(c *Config) { c.GCRatio = 0 }, true},
		{"gc ratio above one", func(c *Config) { c.GCRatio = 1.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSessionStoreCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	store := NewSessionStore(db)
	ctx := context.Background()

	sess := newTestSession("s1")
	if err := store.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	got, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.ID != "s1" || got.Status != session.StatusInProgress {
		t.Errorf("got %+v, want in-progress s1", got)
	}
	if got.CompletedAt != nil {
		t.Error("CompletedAt should be nil for an in-progress session")
	}
}

func TestSessionStoreRejectsDuplicateID(t *testing.T) {
	db := openTestDB(t)
	store := NewSessionStore(db)
	ctx := context.Background()

	if err := store.CreateSession(ctx, newTestSession("s1")); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	err := store.CreateSession(ctx, newTestSession("s1"))
	if !errors.Is(err, ErrSessionExists) {
		t.Errorf("error = %v, want ErrSessionExists", err)
	}
}

func TestSessionStoreGetUnknown(t *testing.T) {
	db := openTestDB(t)
	store := NewSessionStore(db)

	_, err := store.GetSession(context.Background(), "missing")
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestSelectionStoreUpsertReplaces(t *testing.T) {
	db := openTestDB(t)
	store := NewSelectionStore(db)
	ctx := context.Background()

	one := 1
	two := 2
	three := 3
	first := &selection.Selection{
		SessionID: "s1", QuadID: "q1",
		Favorite1: &one, Favorite2: &two, LeastFavorite: &three,
		UpdatedAt: time.Now().UTC(),
	}
	if err := store.UpsertSelection(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	replaced := &selection.Selection{
		SessionID: "s1", QuadID: "q1",
		Skipped:   true,
		UpdatedAt: time.Now().UTC(),
	}
	if err := store.UpsertSelection(ctx, replaced); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := store.GetSelection(ctx, "s1", "q1")
	if err != nil {
		t.Fatalf("GetSelection: %v", err)
	}
	if !got.Skipped {
		t.Error("upsert should replace the prior record")
	}
	if got.Favorite1 != nil {
		t.Error("replaced record must not retain old indices")
	}
}

func TestSelectionStoreGetUnknown(t *testing.T) {
	db := openTestDB(t)
	store := NewSelectionStore(db)

	_, err := store.GetSelection(context.Background(), "s1", "q1")
	if !errors.Is(err, selection.ErrSelectionNotFound) {
		t.Errorf("error = %v, want ErrSelectionNotFound", err)
	}
}

func TestSelectionStoreListIsolatesSessions(t *testing.T) {
	db := openTestDB(t)
	store := NewSelectionStore(db)
	ctx := context.Background()

	for _, rec := range []struct{ sessionID, quadID string }{
		{"s1", "q1"}, {"s1", "q2"}, {"s2", "q1"},
	} {
		sel := &selection.Selection{
			SessionID: rec.sessionID, QuadID: rec.quadID,
			Skipped: true, UpdatedAt: time.Now().UTC(),
		}
		if err := store.UpsertSelection(ctx, sel); err != nil {
			t.Fatalf("upsert %s/%s: %v", rec.sessionID, rec.quadID, err)
		}
	}

	got, err := store.ListSelections(ctx, "s1")
	if err != nil {
		t.Fatalf("ListSelections: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, sel := range got {
		if sel.SessionID != "s1" {
			t.Errorf("leaked selection from session %q", sel.SessionID)
		}
	}

	empty, err := store.ListSelections(ctx, "s3")
	if err != nil {
		t.Fatalf("ListSelections empty: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("unknown session returned %d selections", len(empty))
	}
}

func TestProfileStoreAtomicCompletion(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionStore(db)
	profiles := NewProfileStore(db)
	ctx := context.Background()

	if err := sessions.CreateSession(ctx, newTestSession("s1")); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	p := &scoring.Profile{
		SessionID:      "s1",
		Scores:         scoring.AxisScores{Warmth: 44, Formality: 50, Drama: 50, Tradition: 50, Openness: 50, ArtFocus: 50},
		CompletedQuads: 9,
		TotalQuads:     9,
		TopMaterials:   []string{},
		ComputedAt:     time.Now().UTC(),
	}
	if err := profiles.SaveProfileAndCompleteSession(ctx, p); err != nil {
		t.Fatalf("SaveProfileAndCompleteSession: %v", err)
	}

	sess, err := sessions.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess.Status != session.StatusComplete {
		t.Errorf("Status = %q, want complete", sess.Status)
	}
	if sess.CompletedAt == nil {
		t.Error("CompletedAt should be set on completion")
	}

	got, err := profiles.GetProfile(ctx, "s1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Scores.Warmth != 44 {
		t.Errorf("Warmth = %d, want 44", got.Scores.Warmth)
	}
	if got.TopMaterials == nil || len(got.TopMaterials) != 0 {
		t.Errorf("TopMaterials = %#v, want empty non-nil slice", got.TopMaterials)
	}
}

func TestProfileStoreUnknownSessionWritesNothing(t *testing.T) {
	db := openTestDB(t)
	profiles := NewProfileStore(db)
	ctx := context.Background()

	p := &scoring.Profile{SessionID: "missing", TopMaterials: []string{}}
	err := profiles.SaveProfileAndCompleteSession(ctx, p)
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("error = %v, want ErrSessionNotFound", err)
	}

	// The failed transaction must not leave a profile behind.
	if _, err := profiles.GetProfile(ctx, "missing"); !errors.Is(err, scoring.ErrProfileNotFound) {
		t.Errorf("error = %v, want ErrProfileNotFound", err)
	}
}

func TestProfileStoreRepeatSaveKeepsCompletedAt(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionStore(db)
	profiles := NewProfileStore(db)
	ctx := context.Background()

	if err := sessions.CreateSession(ctx, newTestSession("s1")); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	p := &scoring.Profile{SessionID: "s1", TopMaterials: []string{}, ComputedAt: time.Now().UTC()}
	if err := profiles.SaveProfileAndCompleteSession(ctx, p); err != nil {
		t.Fatalf("first save: %v", err)
	}

	first, err := sessions.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}

	if err := profiles.SaveProfileAndCompleteSession(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	second, err := sessions.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession after repeat: %v", err)
	}
	if !second.CompletedAt.Equal(*first.CompletedAt) {
		t.Errorf("CompletedAt moved from %v to %v on repeat save",
			first.CompletedAt, second.CompletedAt)
	}
}

func TestProfileStoreGetUnknown(t *testing.T) {
	db := openTestDB(t)
	profiles := NewProfileStore(db)

	_, err := profiles.GetProfile(context.Background(), "missing")
	if !errors.Is(err, scoring.ErrProfileNotFound) {
		t.Errorf("error = %v, want ErrProfileNotFound", err)
	}
}

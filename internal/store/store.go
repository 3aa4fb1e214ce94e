// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

// Package store provides the BadgerDB-backed persistence layer.
//
// All records are JSON values under typed key prefixes:
//
//	session:<sessionID>
//	selection:<sessionID>:<quadID>
//	profile:<sessionID>
//
// The prefixes keep per-session selections contiguous so listing a session
// is a single prefix scan. Profile persistence and the session status flip
// share one transaction (see ProfileStore).
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/mlindqvist/gustus/internal/logging"
)

// Key prefixes for BadgerDB storage.
const (
	sessionKeyPrefix   = "session:"
	selectionKeyPrefix = "selection:"
	profileKeyPrefix   = "profile:"
)

// Config controls the BadgerDB instance.
type Config struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string `json:"path" koanf:"path"`

	// InMemory runs BadgerDB without disk persistence. Intended for tests
	// and ephemeral deployments.
	InMemory bool `json:"in_memory" koanf:"in_memory"`

	// SyncWrites forces an fsync on every write. Slower, but a completed
	// session survives a crash immediately after the completion response.
	SyncWrites bool `json:"sync_writes" koanf:"sync_writes"`

	// GCInterval is how often the value-log garbage collector runs.
	GCInterval time.Duration `json:"gc_interval" koanf:"gc_interval"`

	// GCRatio is the rewrite threshold passed to BadgerDB's value-log GC.
	GCRatio float64 `json:"gc_ratio" koanf:"gc_ratio"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		Path:       "data/gustus",
		SyncWrites: true,
		GCInterval: 5 * time.Minute,
		GCRatio:    0.5,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if !c.InMemory && c.Path == "" {
		return errors.New("storage path must not be empty")
	}
	if c.GCInterval <= 0 {
		return errors.New("gc_interval must be positive")
	}
	if c.GCRatio <= 0 || c.GCRatio > 1 {
		return errors.New("gc_ratio must be in (0, 1]")
	}
	return nil
}

// Open opens (or creates) the BadgerDB database.
func Open(cfg Config) (*badger.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage config: %w", err)
	}

	opts := badger.DefaultOptions(cfg.Path)
	opts.SyncWrites = cfg.SyncWrites
	if cfg.InMemory {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}

	// BadgerDB's own logger is noisy; operational visibility comes from the
	// GC service and store call sites instead.
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}
	return db, nil
}

// RunGC runs value-log garbage collection until no further rewrite is
// possible. Safe to call concurrently with reads and writes.
func RunGC(db *badger.DB, ratio float64) error {
	for {
		err := db.RunValueLogGC(ratio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if errors.Is(err, badger.ErrRejected) {
			// GC already in flight or the DB is closing.
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// GCService runs periodic value-log garbage collection. It implements
// suture.Service and runs until its context is canceled.
type GCService struct {
	db       *badger.DB
	interval time.Duration
	ratio    float64
}

// NewGCService creates the GC service from the store configuration.
func NewGCService(db *badger.DB, cfg Config) *GCService {
	return &GCService{db: db, interval: cfg.GCInterval, ratio: cfg.GCRatio}
}

// Serve runs the GC loop until ctx is canceled.
func (g *GCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := RunGC(g.db, g.ratio); err != nil {
				logging.Warn().Err(err).Msg("value-log GC failed")
			}
		}
	}
}

// String names the service in supervisor logs.
func (g *GCService) String() string {
	return "store.gc"
}

// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package scoring

import (
	"context"
	"errors"
	"time"

	"github.com/mlindqvist/gustus/internal/catalog"
)

// ErrProfileNotFound indicates no profile has been persisted for the session.
var ErrProfileNotFound = errors.New("profile not found")

// StoredScale is the factor between display scores (1-10) and the persisted
// integer representation (10-100). Consumers divide by this to redisplay.
const StoredScale = 10

// AxisScores holds the persisted integer scores (display score × 10, so
// 10-100) for the six profile axes. A fixed struct rather than a map keeps
// axis access compile-time checked.
type AxisScores struct {
	Warmth    int `json:"warmth"`
	Formality int `json:"formality"`
	Drama     int `json:"drama"`
	Tradition int `json:"tradition"`
	Openness  int `json:"openness"`
	ArtFocus  int `json:"art_focus"`
}

// Get returns the persisted score for an axis, or 0 for an invalid axis.
func (s *AxisScores) Get(a catalog.Axis) int {
	switch a {
	case catalog.AxisWarmth:
		return s.Warmth
	case catalog.AxisFormality:
		return s.Formality
	case catalog.AxisDrama:
		return s.Drama
	case catalog.AxisTradition:
		return s.Tradition
	case catalog.AxisOpenness:
		return s.Openness
	case catalog.AxisArtFocus:
		return s.ArtFocus
	default:
		return 0
	}
}

// Set stores the persisted score for an axis. Invalid axes are ignored.
func (s *AxisScores) Set(a catalog.Axis, stored int) {
	switch a {
	case catalog.AxisWarmth:
		s.Warmth = stored
	case catalog.AxisFormality:
		s.Formality = stored
	case catalog.AxisDrama:
		s.Drama = stored
	case catalog.AxisTradition:
		s.Tradition = stored
	case catalog.AxisOpenness:
		s.Openness = stored
	case catalog.AxisArtFocus:
		s.ArtFocus = stored
	}
}

// Profile is the aggregated scoring output for a completed session.
type Profile struct {
	// SessionID identifies the session the profile belongs to.
	SessionID string `json:"session_id"`

	// Scores holds the six persisted axis scores (display score × 10).
	Scores AxisScores `json:"scores"`

	// CompletedQuads counts resolved, non-skipped selections.
	CompletedQuads int `json:"completed_quads"`

	// SkippedQuads counts skipped selections.
	SkippedQuads int `json:"skipped_quads"`

	// TotalQuads is the fixed catalog size, not the count of answered quads,
	// so a partially-completed session still reports the true denominator.
	TotalQuads int `json:"total_quads"`

	// TopMaterials is a declared extension point that the aggregation
	// algorithm does not populate yet. It serializes as an empty list and
	// must round-trip without error.
	TopMaterials []string `json:"top_materials"`

	// ComputedAt is when the profile was aggregated.
	ComputedAt time.Time `json:"computed_at"`
}

// DisplayScore returns the 1-10 representation of an axis score.
func (p *Profile) DisplayScore(a catalog.Axis) float64 {
	return float64(p.Scores.Get(a)) / StoredScale
}

// Store is the persistence surface for profiles. Completion is atomic: the
// profile write and the session status flip succeed or fail together, so a
// session is never marked complete without a saved profile or vice versa.
type Store interface {
	// SaveProfileAndCompleteSession persists the profile and marks its
	// session complete as a single unit.
	SaveProfileAndCompleteSession(ctx context.Context, p *Profile) error

	// GetProfile returns the persisted profile, or ErrProfileNotFound.
	GetProfile(ctx context.Context, sessionID string) (*Profile, error)
}

// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package scoring

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mlindqvist/gustus/internal/catalog"
	"github.com/mlindqvist/gustus/internal/logging"
	"github.com/mlindqvist/gustus/internal/selection"
)

// Aggregator computes taste profiles from selection sets. It performs no
// I/O; Aggregate is deterministic and idempotent over its inputs.
type Aggregator struct {
	library *catalog.Library
	cfg     Config
	now     func() time.Time
}

// NewAggregator creates an aggregator with the given scoring policy.
func NewAggregator(library *catalog.Library, cfg Config) (*Aggregator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scoring config: %w", err)
	}
	return &Aggregator{library: library, cfg: cfg, now: time.Now}, nil
}

// axisAccumulator tracks the weighted sum for one axis.
type axisAccumulator struct {
	sum float64
}

// Aggregate computes the profile for a session from its full selection set.
//
// Only resolved, non-skipped selections contribute. A selection referencing
// a quad no longer in the catalog is silently excluded rather than treated
// as fatal. When no selection contributes any weight, every axis defaults to
// the configured midpoint.
func (a *Aggregator) Aggregate(sessionID string, selections []selection.Selection) *Profile {
	var (
		sums        [catalog.NumAttributeAxes]axisAccumulator
		totalWeight float64
		completed   int
		skipped     int
	)

	for i := range selections {
		sel := &selections[i]

		if sel.Skipped {
			skipped++
			continue
		}
		if !sel.Resolved() {
			continue
		}

		quad, err := a.library.Lookup(sel.QuadID)
		if err != nil {
			if errors.Is(err, catalog.ErrQuadNotFound) {
				// The quad was removed from the catalog after the selection
				// was recorded. Exclude it; do not abort aggregation.
				logging.Debug().
					Str("session_id", sessionID).
					Str("quad_id", sel.QuadID).
					Msg("Selection references removed quad; excluded from aggregation")
				continue
			}
			continue
		}

		completed++

		if quad.Attributes == nil {
			continue
		}

		for _, role := range []struct {
			index  *int
			weight float64
		}{
			{sel.Favorite1, a.cfg.Weights.Favorite1},
			{sel.Favorite2, a.cfg.Weights.Favorite2},
			{sel.LeastFavorite, a.cfg.Weights.LeastFavorite},
		} {
			if role.index == nil {
				continue
			}
			pos := *role.index

			for axisIdx, axis := range catalog.AttributeAxes() {
				values, _ := quad.Attributes.Values(axis)
				sums[axisIdx].sum += values[pos] * role.weight
			}
			totalWeight += math.Abs(role.weight)
		}
	}

	profile := &Profile{
		SessionID:      sessionID,
		CompletedQuads: completed,
		SkippedQuads:   skipped,
		TotalQuads:     a.library.Size(),
		TopMaterials:   []string{},
		ComputedAt:     a.now().UTC(),
	}

	midpoint := a.cfg.Scale.Midpoint
	for axisIdx, axis := range catalog.AttributeAxes() {
		score := midpoint
		if totalWeight > 0 {
			score = a.cfg.Scale.apply(sums[axisIdx].sum / totalWeight)
		}
		profile.Scores.Set(axis, storedScore(score))
	}

	// Openness and art focus have no catalog attribute source; they stay at
	// the midpoint until a data source exists.
	profile.Scores.Set(catalog.AxisOpenness, storedScore(midpoint))
	profile.Scores.Set(catalog.AxisArtFocus, storedScore(midpoint))

	return profile
}

// storedScore converts a display score to the persisted ×10 integer form.
func storedScore(score float64) int {
	return int(math.Round(score * StoredScale))
}

// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package scoring

import (
	"errors"
	"fmt"
)

// Config contains the scoring policy: role weights and the scale mapping.
// All values are fixed at construction; the aggregator itself holds no
// tunable literals.
type Config struct {
	// Weights defines the contribution of each selection role.
	Weights RoleWeights `json:"weights" koanf:"weights"`

	// Scale maps the weighted attribute average onto the axis scale.
	Scale ScaleConfig `json:"scale" koanf:"scale"`
}

// RoleWeights defines the per-role contribution to axis sums.
type RoleWeights struct {
	// Favorite1 is the weight of the most preferred image. Must be positive.
	Favorite1 float64 `json:"favorite1" koanf:"favorite1"`

	// Favorite2 is the weight of the second preference. Must be positive and
	// smaller than Favorite1.
	Favorite2 float64 `json:"favorite2" koanf:"favorite2"`

	// LeastFavorite is the weight of the least preferred image. Must be
	// negative; it pulls the score away from that image's attributes.
	LeastFavorite float64 `json:"least_favorite" koanf:"least_favorite"`
}

// ScaleConfig is the monotonic, deterministic mapping from a weighted
// attribute average to an axis score: score = clamp(Gain*avg + Offset, Min, Max).
type ScaleConfig struct {
	// Gain is the multiplicative term. Must be positive to keep the mapping
	// monotonically increasing.
	Gain float64 `json:"gain" koanf:"gain"`

	// Offset is the additive term.
	Offset float64 `json:"offset" koanf:"offset"`

	// Min is the lower clamp bound of the axis scale.
	Min float64 `json:"min" koanf:"min"`

	// Max is the upper clamp bound of the axis scale.
	Max float64 `json:"max" koanf:"max"`

	// Midpoint is the default score for axes with no data: sessions with
	// zero aggregation weight, and the openness/art-focus axes which have no
	// catalog attribute source yet.
	Midpoint float64 `json:"midpoint" koanf:"midpoint"`
}

// DefaultConfig returns the production scoring policy.
func DefaultConfig() Config {
	return Config{
		Weights: RoleWeights{
			Favorite1:     1.0,
			Favorite2:     0.5,
			LeastFavorite: -0.75,
		},
		Scale: ScaleConfig{
			Gain:     1.0,
			Offset:   0.0,
			Min:      1.0,
			Max:      10.0,
			Midpoint: 5.0,
		},
	}
}

// Configuration errors.
var (
	ErrBadWeights = errors.New("invalid role weights")
	ErrBadScale   = errors.New("invalid scale config")
)

// Validate checks the structural constraints of the scoring policy.
func (c Config) Validate() error {
	w := c.Weights
	if w.Favorite1 <= 0 {
		return fmt.Errorf("%w: favorite1 must be positive, got %g", ErrBadWeights, w.Favorite1)
	}
	if w.Favorite2 <= 0 || w.Favorite2 >= w.Favorite1 {
		return fmt.Errorf("%w: favorite2 must be in (0, favorite1), got %g", ErrBadWeights, w.Favorite2)
	}
	if w.LeastFavorite >= 0 {
		return fmt.Errorf("%w: least_favorite must be negative, got %g", ErrBadWeights, w.LeastFavorite)
	}

	s := c.Scale
	if s.Gain <= 0 {
		return fmt.Errorf("%w: gain must be positive, got %g", ErrBadScale, s.Gain)
	}
	if s.Min >= s.Max {
		return fmt.Errorf("%w: min %g must be below max %g", ErrBadScale, s.Min, s.Max)
	}
	if s.Midpoint < s.Min || s.Midpoint > s.Max {
		return fmt.Errorf("%w: midpoint %g outside [%g, %g]", ErrBadScale, s.Midpoint, s.Min, s.Max)
	}
	return nil
}

// apply maps a weighted average onto the axis scale.
func (s ScaleConfig) apply(avg float64) float64 {
	score := s.Gain*avg + s.Offset
	if score < s.Min {
		return s.Min
	}
	if score > s.Max {
		return s.Max
	}
	return score
}

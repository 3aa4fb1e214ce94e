// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

// Package scoring converts a session's recorded selections into its
// six-axis taste profile.
//
// Aggregation is a pure, synchronous function over an already-loaded
// selection set: each resolved, non-skipped selection contributes its
// images' per-axis attribute values weighted by role (favorite, second
// favorite, least favorite with a negative weight), the weighted average is
// mapped onto the 1-10 axis scale, and the result is persisted as integers
// scaled by ten. Recomputation over an unchanged selection set yields an
// identical profile.
//
// Weighting and scale are construction-time configuration, not literals, so
// the scoring policy can be calibrated and tested independently of the
// algorithm's shape.
package scoring

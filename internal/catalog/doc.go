// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

// Package catalog holds the immutable library of comparison quads.
//
// A quad is a forced-choice set of exactly four candidate images belonging to
// one of nine fixed room categories. Each image may carry per-axis style
// attribute values (warmth, formality, drama, tradition) used by the scoring
// aggregator, and may embed discrete style codes in its reference string
// (see ParseStyleCode) used by the report deriver.
//
// The library is loaded once at process start, either from a YAML catalog
// file or from the built-in default catalog, and is never mutated afterwards.
// All lookups are safe for concurrent use.
package catalog

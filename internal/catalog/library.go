// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package catalog

import (
	"errors"
	"fmt"
)

// ErrDuplicateQuadID indicates two catalog entries sharing an ID.
var ErrDuplicateQuadID = errors.New("duplicate quad id in catalog")

// Library is the immutable, shared arena of quads keyed by quad ID.
// It is built once at process start and never mutated, so all methods are
// safe for concurrent use without locking.
type Library struct {
	quads      []Quad
	byID       map[string]int
	byCategory [NumCategories][]int
}

// NewLibrary builds a library from quads in catalog order. The input order
// defines the fixed questionnaire ordering used for resume and completion.
func NewLibrary(quads []Quad) (*Library, error) {
	lib := &Library{
		quads: make([]Quad, len(quads)),
		byID:  make(map[string]int, len(quads)),
	}

	copy(lib.quads, quads)

	for i := range lib.quads {
		q := &lib.quads[i]
		if err := q.validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, exists := lib.byID[q.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateQuadID, q.ID)
		}
		lib.byID[q.ID] = i
		lib.byCategory[q.Category] = append(lib.byCategory[q.Category], i)
	}

	return lib, nil
}

// Lookup returns the quad with the given ID, or ErrQuadNotFound.
func (l *Library) Lookup(quadID string) (*Quad, error) {
	i, ok := l.byID[quadID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrQuadNotFound, quadID)
	}
	return &l.quads[i], nil
}

// ListByCategory returns the quads of one category in fixed catalog order.
func (l *Library) ListByCategory(c Category) []*Quad {
	if !c.Valid() {
		return nil
	}
	out := make([]*Quad, len(l.byCategory[c]))
	for i, idx := range l.byCategory[c] {
		out[i] = &l.quads[idx]
	}
	return out
}

// Quads returns all quads in fixed catalog order.
func (l *Library) Quads() []*Quad {
	out := make([]*Quad, len(l.quads))
	for i := range l.quads {
		out[i] = &l.quads[i]
	}
	return out
}

// Size returns the fixed catalog size. This is the true denominator for
// session progress regardless of how many quads a client has answered.
func (l *Library) Size() int {
	return len(l.quads)
}

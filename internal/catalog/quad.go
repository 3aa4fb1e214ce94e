// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package catalog

import (
	"errors"
	"fmt"
)

// QuadImages is the fixed number of candidate images per quad.
const QuadImages = 4

// Validation errors for quad construction.
var (
	// ErrEmptyQuadID indicates a quad without an identifier.
	ErrEmptyQuadID = errors.New("quad id must not be empty")

	// ErrMissingImage indicates a quad with an empty image reference.
	ErrMissingImage = errors.New("quad must have exactly four non-empty image references")

	// ErrAttributeOutOfRange indicates an attribute value outside [1, 10].
	ErrAttributeOutOfRange = errors.New("attribute value out of range [1, 10]")
)

// AttributeSet holds one attribute value per image position for each of the
// four sourced axes. Values are on a 1-10 scale. The arrays are parallel to
// the quad's image positions 0-3.
type AttributeSet struct {
	Warmth    [QuadImages]float64 `json:"warmth"`
	Formality [QuadImages]float64 `json:"formality"`
	Drama     [QuadImages]float64 `json:"drama"`
	Tradition [QuadImages]float64 `json:"tradition"`
}

// Values returns the per-image values for the given axis and true, or a zero
// array and false when the axis has no attribute source.
func (s *AttributeSet) Values(a Axis) ([QuadImages]float64, bool) {
	switch a {
	case AxisWarmth:
		return s.Warmth, true
	case AxisFormality:
		return s.Formality, true
	case AxisDrama:
		return s.Drama, true
	case AxisTradition:
		return s.Tradition, true
	default:
		return [QuadImages]float64{}, false
	}
}

// validate checks every attribute value is on the 1-10 scale.
func (s *AttributeSet) validate() error {
	for _, axis := range AttributeAxes() {
		values, _ := s.Values(axis)
		for pos, v := range values {
			if v < 1 || v > 10 {
				return fmt.Errorf("%w: %s[%d] = %g", ErrAttributeOutOfRange, axis, pos, v)
			}
		}
	}
	return nil
}

// Quad is one forced-choice comparison set: exactly four candidate images in
// fixed position order 0-3, belonging to a single category. Quads are
// immutable once loaded into a Library.
type Quad struct {
	// ID uniquely identifies the quad within the catalog.
	ID string `json:"id"`

	// Category is the comparison category the quad belongs to.
	Category Category `json:"category"`

	// Images holds the four image references in fixed position order.
	// References may embed style codes (see ParseStyleCode); legacy
	// references without codes are allowed.
	Images [QuadImages]string `json:"images"`

	// Attributes holds optional per-axis attribute values parallel to Images.
	// Nil when the quad carries no attribute data; such quads still count
	// toward completion but contribute nothing to axis scores.
	Attributes *AttributeSet `json:"attributes,omitempty"`
}

// validate checks structural invariants of a quad.
func (q *Quad) validate() error {
	if q.ID == "" {
		return ErrEmptyQuadID
	}
	if !q.Category.Valid() {
		return fmt.Errorf("quad %q: %w: %d", q.ID, ErrUnknownCategory, int(q.Category))
	}
	for pos, ref := range q.Images {
		if ref == "" {
			return fmt.Errorf("quad %q: %w (position %d)", q.ID, ErrMissingImage, pos)
		}
	}
	if q.Attributes != nil {
		if err := q.Attributes.validate(); err != nil {
			return fmt.Errorf("quad %q: %w", q.ID, err)
		}
	}
	return nil
}

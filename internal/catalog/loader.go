// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package catalog

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrBadCatalogFile wraps structural problems in a catalog YAML file.
var ErrBadCatalogFile = errors.New("invalid catalog file")

// catalogFile is the YAML document shape for an external catalog.
type catalogFile struct {
	Quads []quadEntry `koanf:"quads"`
}

// quadEntry is one quad in the YAML catalog. Category accepts either the
// canonical name ("living_room") or the three-letter code ("LIV").
type quadEntry struct {
	ID         string          `koanf:"id"`
	Category   string          `koanf:"category"`
	Images     []string        `koanf:"images"`
	Attributes *attributeEntry `koanf:"attributes"`
}

// attributeEntry holds the optional per-axis value arrays, each parallel to
// the image positions.
type attributeEntry struct {
	Warmth    []float64 `koanf:"warmth"`
	Formality []float64 `koanf:"formality"`
	Drama     []float64 `koanf:"drama"`
	Tradition []float64 `koanf:"tradition"`
}

// Load builds the library from a YAML catalog file, or from the built-in
// default catalog when path is empty. The result is immutable; Load is meant
// to run exactly once at process start.
func Load(path string) (*Library, error) {
	if path == "" {
		return NewLibrary(DefaultQuads())
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", path, err)
	}

	var doc catalogFile
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", path, err)
	}
	if len(doc.Quads) == 0 {
		return nil, fmt.Errorf("%w: %q contains no quads", ErrBadCatalogFile, path)
	}

	quads := make([]Quad, 0, len(doc.Quads))
	for i, entry := range doc.Quads {
		quad, err := entry.toQuad()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrBadCatalogFile, i, err)
		}
		quads = append(quads, quad)
	}

	return NewLibrary(quads)
}

// toQuad converts a YAML entry into a validated Quad.
func (e quadEntry) toQuad() (Quad, error) {
	category, err := ParseCategory(e.Category)
	if err != nil {
		return Quad{}, err
	}

	if len(e.Images) != QuadImages {
		return Quad{}, fmt.Errorf("quad %q: expected %d images, got %d", e.ID, QuadImages, len(e.Images))
	}

	quad := Quad{ID: e.ID, Category: category}
	copy(quad.Images[:], e.Images)

	if e.Attributes != nil {
		set := &AttributeSet{}
		for _, conv := range []struct {
			axis   Axis
			values []float64
			dst    *[QuadImages]float64
		}{
			{AxisWarmth, e.Attributes.Warmth, &set.Warmth},
			{AxisFormality, e.Attributes.Formality, &set.Formality},
			{AxisDrama, e.Attributes.Drama, &set.Drama},
			{AxisTradition, e.Attributes.Tradition, &set.Tradition},
		} {
			if len(conv.values) != QuadImages {
				return Quad{}, fmt.Errorf("quad %q: %s has %d values, expected %d",
					e.ID, conv.axis, len(conv.values), QuadImages)
			}
			copy(conv.dst[:], conv.values)
		}
		quad.Attributes = set
	}

	return quad, nil
}

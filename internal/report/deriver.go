// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

// Package report derives the per-category and overall style metrics used by
// the printable report.
//
// Every metric recovers locally from missing data: a category without a
// representative selection falls back to neutral defaults instead of
// erroring, and an unparseable style code substitutes the same defaults.
// The two missing-data policies intentionally differ and are implemented as
// separately named functions: per-category metrics ALWAYS produce a row
// (defaulted, marked HasSelection=false), while the overall average EXCLUDES
// categories without a representative rather than defaulting them.
package report

import (
	"github.com/mlindqvist/gustus/internal/catalog"
	"github.com/mlindqvist/gustus/internal/selection"
)

// Metric scale constants. Style codes are 1-9; report metrics are 1-5.
const (
	// NeutralMetric is the fallback value for missing or unparseable data,
	// the midpoint of the 1-5 report scale.
	NeutralMetric = 2.5
)

// CategoryMetrics is the report row for one comparison category.
type CategoryMetrics struct {
	// Category is the comparison category the row describes.
	Category catalog.Category `json:"category"`

	// StyleEra is the architectural style metric on the 1-5 scale.
	StyleEra float64 `json:"style_era"`

	// MaterialComplexity is the material/visual descriptor metric, 1-5.
	MaterialComplexity float64 `json:"material_complexity"`

	// MoodPalette is the mood/palette metric, 1-5.
	MoodPalette float64 `json:"mood_palette"`

	// HasSelection is false when the category had no representative
	// selection and the metrics are neutral defaults. Informational, not an
	// error state.
	HasSelection bool `json:"has_selection"`
}

// OverallMetrics is the cross-category summary for the report cover.
type OverallMetrics struct {
	StyleEra           float64 `json:"style_era"`
	MaterialComplexity float64 `json:"material_complexity"`
	MoodPalette        float64 `json:"mood_palette"`

	// StyleLabel is the qualitative classification of StyleEra.
	StyleLabel string `json:"style_label"`
}

// Deriver computes report metrics from a session's selections and the quad
// library. Pure and synchronous; all methods are idempotent over their inputs.
type Deriver struct {
	library *catalog.Library
}

// NewDeriver creates a deriver over the given library.
func NewDeriver(library *catalog.Library) *Deriver {
	return &Deriver{library: library}
}

// representativeImage finds the category's representative image reference:
// the favorite1 image of the first quad in catalog order within the category
// that has a resolved, non-skipped selection. Returns "" when the category
// has no representative.
func (d *Deriver) representativeImage(c catalog.Category, byQuad map[string]*selection.Selection) string {
	for _, quad := range d.library.ListByCategory(c) {
		sel, ok := byQuad[quad.ID]
		if !ok || !sel.Answered() {
			continue
		}
		return quad.Images[*sel.Favorite1]
	}
	return ""
}

// rescale maps a 1-9 style code linearly onto the 1-5 metric scale.
func rescale(code int) float64 {
	return float64(code-1)/8*4 + 1
}

// metricsFromImage parses the image's embedded style code into a metric
// triple. Parse failures substitute neutral defaults; a legacy AS-only code
// yields a real style era with neutral material and mood.
func metricsFromImage(ref string) (styleEra, materialComplexity, moodPalette float64) {
	code, err := catalog.ParseStyleCode(ref)
	if err != nil {
		return NeutralMetric, NeutralMetric, NeutralMetric
	}

	styleEra = rescale(code.Era)
	if !code.HasDetail() {
		return styleEra, NeutralMetric, NeutralMetric
	}
	return styleEra, rescale(code.Descriptor), rescale(code.Mood)
}

// CategoryMetricsFor computes the report row for one category.
//
// This is the always-default policy: when the category has no representative
// selection the row still exists, carrying neutral defaults and
// HasSelection=false. It never fails, even with zero session data.
func (d *Deriver) CategoryMetricsFor(c catalog.Category, selections []selection.Selection) CategoryMetrics {
	ref := d.representativeImage(c, selection.ByQuad(selections))
	if ref == "" {
		return CategoryMetrics{
			Category:           c,
			StyleEra:           NeutralMetric,
			MaterialComplexity: NeutralMetric,
			MoodPalette:        NeutralMetric,
			HasSelection:       false,
		}
	}

	era, material, mood := metricsFromImage(ref)
	return CategoryMetrics{
		Category:           c,
		StyleEra:           era,
		MaterialComplexity: material,
		MoodPalette:        mood,
		HasSelection:       true,
	}
}

// AllCategoryMetrics computes the rows for all nine categories in fixed
// order. The result always has nine entries; unanswered categories carry
// defaults, never gaps.
func (d *Deriver) AllCategoryMetrics(selections []selection.Selection) []CategoryMetrics {
	byQuad := selection.ByQuad(selections)

	out := make([]CategoryMetrics, 0, catalog.NumCategories)
	for _, c := range catalog.Categories() {
		ref := d.representativeImage(c, byQuad)
		if ref == "" {
			out = append(out, CategoryMetrics{
				Category:           c,
				StyleEra:           NeutralMetric,
				MaterialComplexity: NeutralMetric,
				MoodPalette:        NeutralMetric,
				HasSelection:       false,
			})
			continue
		}
		era, material, mood := metricsFromImage(ref)
		out = append(out, CategoryMetrics{
			Category:           c,
			StyleEra:           era,
			MaterialComplexity: material,
			MoodPalette:        mood,
			HasSelection:       true,
		})
	}
	return out
}

// OverallMetricsFor computes the cross-category summary.
//
// This is the exclude-missing policy: only categories with a representative
// selection enter the averages. A session with zero representatives yields
// the neutral triple and its label; the call never fails.
func (d *Deriver) OverallMetricsFor(selections []selection.Selection) OverallMetrics {
	byQuad := selection.ByQuad(selections)

	var (
		eraSum, materialSum, moodSum float64
		answered                     int
	)

	for _, c := range catalog.Categories() {
		ref := d.representativeImage(c, byQuad)
		if ref == "" {
			continue
		}
		era, material, mood := metricsFromImage(ref)
		eraSum += era
		materialSum += material
		moodSum += mood
		answered++
	}

	if answered == 0 {
		return OverallMetrics{
			StyleEra:           NeutralMetric,
			MaterialComplexity: NeutralMetric,
			MoodPalette:        NeutralMetric,
			StyleLabel:         Classify(NeutralMetric),
		}
	}

	n := float64(answered)
	avgEra := eraSum / n
	return OverallMetrics{
		StyleEra:           avgEra,
		MaterialComplexity: materialSum / n,
		MoodPalette:        moodSum / n,
		StyleLabel:         Classify(avgEra),
	}
}

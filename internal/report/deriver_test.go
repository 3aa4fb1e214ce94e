// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package report

import (
	"fmt"
	"math"
	"testing"

	"github.com/mlindqvist/gustus/internal/catalog"
	"github.com/mlindqvist/gustus/internal/selection"
)

func intPtr(i int) *int { return &i }

// codedQuad builds a quad whose image references embed the same style code
// at every position.
func codedQuad(id string, c catalog.Category, as, vd, mp int) catalog.Quad {
	var images [catalog.QuadImages]string
	for pos := range images {
		images[pos] = fmt.Sprintf("images/%s-01_%d_AS%d_VD%d_MP%d.jpg", c.Code(), pos, as, vd, mp)
	}
	return catalog.Quad{ID: id, Category: c, Images: images}
}

// plainQuad builds a quad with uncoded (legacy archive) image references.
func plainQuad(id string, c catalog.Category) catalog.Quad {
	return catalog.Quad{
		ID:       id,
		Category: c,
		Images:   [catalog.QuadImages]string{"p0.jpg", "p1.jpg", "p2.jpg", "p3.jpg"},
	}
}

// answered builds a resolved, non-skipped selection with favorite1 at pos.
func answered(quadID string, pos int) selection.Selection {
	f2 := (pos + 1) % catalog.QuadImages
	lf := (pos + 2) % catalog.QuadImages
	return selection.Selection{
		SessionID:     "s1",
		QuadID:        quadID,
		Favorite1:     intPtr(pos),
		Favorite2:     intPtr(f2),
		LeastFavorite: intPtr(lf),
	}
}

func mustDeriver(t *testing.T, quads ...catalog.Quad) *Deriver {
	t.Helper()
	lib, err := catalog.NewLibrary(quads)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	return NewDeriver(lib)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRescale(t *testing.T) {
	tests := []struct {
		code int
		want float64
	}{
		{1, 1.0},
		{3, 2.0},
		{5, 3.0},
		{7, 4.0},
		{9, 5.0},
		{2, 1.5},
	}
	for _, tt := range tests {
		if got := rescale(tt.code); !almostEqual(got, tt.want) {
			t.Errorf("rescale(%d) = %g, want %g", tt.code, got, tt.want)
		}
	}
}

func TestCategoryMetricsForAnswered(t *testing.T) {
	d := mustDeriver(t, codedQuad("q1", catalog.CategoryKitchen, 5, 1, 9))

	m := d.CategoryMetricsFor(catalog.CategoryKitchen, []selection.Selection{
		answered("q1", 0),
	})

	if !m.HasSelection {
		t.Fatal("HasSelection should be true")
	}
	if !almostEqual(m.StyleEra, 3.0) {
		t.Errorf("StyleEra = %g, want 3.0 (AS5)", m.StyleEra)
	}
	if !almostEqual(m.MaterialComplexity, 1.0) {
		t.Errorf("MaterialComplexity = %g, want 1.0 (VD1)", m.MaterialComplexity)
	}
	if !almostEqual(m.MoodPalette, 5.0) {
		t.Errorf("MoodPalette = %g, want 5.0 (MP9)", m.MoodPalette)
	}
}

func TestCategoryMetricsForNoSelectionDefaults(t *testing.T) {
	d := mustDeriver(t, codedQuad("q1", catalog.CategoryKitchen, 5, 5, 5))

	m := d.CategoryMetricsFor(catalog.CategoryKitchen, nil)

	if m.HasSelection {
		t.Error("HasSelection should be false")
	}
	for name, got := range map[string]float64{
		"StyleEra":           m.StyleEra,
		"MaterialComplexity": m.MaterialComplexity,
		"MoodPalette":        m.MoodPalette,
	} {
		if !almostEqual(got, NeutralMetric) {
			t.Errorf("%s = %g, want %g", name, got, NeutralMetric)
		}
	}
}

func TestCategoryMetricsSkippedIsNotRepresentative(t *testing.T) {
	d := mustDeriver(t, codedQuad("q1", catalog.CategoryKitchen, 9, 9, 9))

	m := d.CategoryMetricsFor(catalog.CategoryKitchen, []selection.Selection{
		{SessionID: "s1", QuadID: "q1", Skipped: true},
	})

	if m.HasSelection {
		t.Error("a skipped quad must not act as representative")
	}
}

func TestCategoryMetricsFirstInCatalogOrderWins(t *testing.T) {
	d := mustDeriver(t,
		codedQuad("first", catalog.CategoryKitchen, 1, 1, 1),
		codedQuad("second", catalog.CategoryKitchen, 9, 9, 9),
	)

	// Both quads answered: the first in catalog order is the representative.
	m := d.CategoryMetricsFor(catalog.CategoryKitchen, []selection.Selection{
		answered("second", 0),
		answered("first", 0),
	})
	if !almostEqual(m.StyleEra, 1.0) {
		t.Errorf("StyleEra = %g, want 1.0 from first quad", m.StyleEra)
	}

	// Only the second answered: it becomes the representative.
	m = d.CategoryMetricsFor(catalog.CategoryKitchen, []selection.Selection{
		answered("second", 0),
	})
	if !almostEqual(m.StyleEra, 5.0) {
		t.Errorf("StyleEra = %g, want 5.0 from second quad", m.StyleEra)
	}
}

func TestCategoryMetricsParseFailureUsesDefaults(t *testing.T) {
	d := mustDeriver(t, plainQuad("q1", catalog.CategoryArtDecor))

	m := d.CategoryMetricsFor(catalog.CategoryArtDecor, []selection.Selection{
		answered("q1", 0),
	})

	// The selection exists, so HasSelection is true, but the metrics fall
	// back to neutral because the image carries no parseable code.
	if !m.HasSelection {
		t.Error("HasSelection should be true for an answered category")
	}
	if !almostEqual(m.StyleEra, NeutralMetric) || !almostEqual(m.MoodPalette, NeutralMetric) {
		t.Errorf("metrics = %g/%g/%g, want neutral defaults",
			m.StyleEra, m.MaterialComplexity, m.MoodPalette)
	}
}

func TestCategoryMetricsLegacyASOnly(t *testing.T) {
	quad := catalog.Quad{
		ID:       "q1",
		Category: catalog.CategoryOutdoor,
		Images: [catalog.QuadImages]string{
			"OUT-02_0_AS9.jpg", "OUT-02_1_AS9.jpg", "OUT-02_2_AS9.jpg", "OUT-02_3_AS9.jpg",
		},
	}
	d := mustDeriver(t, quad)

	m := d.CategoryMetricsFor(catalog.CategoryOutdoor, []selection.Selection{
		answered("q1", 0),
	})

	if !almostEqual(m.StyleEra, 5.0) {
		t.Errorf("StyleEra = %g, want 5.0 from legacy AS9", m.StyleEra)
	}
	if !almostEqual(m.MaterialComplexity, NeutralMetric) || !almostEqual(m.MoodPalette, NeutralMetric) {
		t.Errorf("legacy code should leave material/mood neutral, got %g/%g",
			m.MaterialComplexity, m.MoodPalette)
	}
}

func TestAllCategoryMetricsAlwaysNineRows(t *testing.T) {
	d := mustDeriver(t, codedQuad("q1", catalog.CategoryBedroom, 3, 3, 3))

	rows := d.AllCategoryMetrics(nil)
	if len(rows) != catalog.NumCategories {
		t.Fatalf("rows = %d, want %d", len(rows), catalog.NumCategories)
	}
	for i, c := range catalog.Categories() {
		if rows[i].Category != c {
			t.Errorf("rows[%d].Category = %v, want %v", i, rows[i].Category, c)
		}
		if rows[i].HasSelection {
			t.Errorf("rows[%d].HasSelection = true for empty session", i)
		}
	}
}

func TestOverallVsCategoryAsymmetry(t *testing.T) {
	// Five of nine categories answered. Per-category metrics must default
	// the other four (present, not excluded); the overall average must use
	// only the five answered ones (excluded, not defaulted).
	answeredCategories := []catalog.Category{
		catalog.CategoryLivingRoom,
		catalog.CategoryBedroom,
		catalog.CategoryKitchen,
		catalog.CategoryDining,
		catalog.CategoryBathroom,
	}

	var quads []catalog.Quad
	var selections []selection.Selection
	for i, c := range answeredCategories {
		id := fmt.Sprintf("q%d", i)
		// All five use AS9 so the answered average is unambiguous.
		quads = append(quads, codedQuad(id, c, 9, 9, 9))
		selections = append(selections, answered(id, 0))
	}
	// Unanswered categories still have quads in the catalog.
	quads = append(quads, codedQuad("q-office", catalog.CategoryOffice, 1, 1, 1))

	d := mustDeriver(t, quads...)

	rows := d.AllCategoryMetrics(selections)
	var withSelection, defaulted int
	for _, row := range rows {
		if row.HasSelection {
			withSelection++
		} else {
			defaulted++
			if !almostEqual(row.StyleEra, NeutralMetric) {
				t.Errorf("defaulted row %s StyleEra = %g, want %g",
					row.Category, row.StyleEra, NeutralMetric)
			}
		}
	}
	if withSelection != 5 || defaulted != 4 {
		t.Errorf("rows split = %d answered / %d defaulted, want 5/4", withSelection, defaulted)
	}

	overall := d.OverallMetricsFor(selections)
	// Average of five AS9 categories is exactly 5.0; if the four missing
	// categories had been defaulted in, it would be dragged toward 2.5.
	if !almostEqual(overall.StyleEra, 5.0) {
		t.Errorf("overall StyleEra = %g, want 5.0 (missing categories excluded)", overall.StyleEra)
	}
	if overall.StyleLabel != StyleTraditional {
		t.Errorf("StyleLabel = %q, want %q", overall.StyleLabel, StyleTraditional)
	}
}

func TestOverallMetricsZeroDataNeverFails(t *testing.T) {
	d := mustDeriver(t, codedQuad("q1", catalog.CategoryLighting, 4, 4, 4))

	overall := d.OverallMetricsFor(nil)

	if !almostEqual(overall.StyleEra, NeutralMetric) {
		t.Errorf("StyleEra = %g, want %g", overall.StyleEra, NeutralMetric)
	}
	if overall.StyleLabel != StyleTransitional {
		t.Errorf("StyleLabel = %q, want %q (neutral era is transitional)",
			overall.StyleLabel, StyleTransitional)
	}
}

func TestOverallMetricsMixedCodes(t *testing.T) {
	d := mustDeriver(t,
		codedQuad("q1", catalog.CategoryLivingRoom, 1, 3, 5), // era 1, material 2, mood 3
		codedQuad("q2", catalog.CategoryBedroom, 9, 5, 7),    // era 5, material 3, mood 4
	)

	overall := d.OverallMetricsFor([]selection.Selection{
		answered("q1", 0),
		answered("q2", 0),
	})

	if !almostEqual(overall.StyleEra, 3.0) {
		t.Errorf("StyleEra = %g, want 3.0", overall.StyleEra)
	}
	if !almostEqual(overall.MaterialComplexity, 2.5) {
		t.Errorf("MaterialComplexity = %g, want 2.5", overall.MaterialComplexity)
	}
	if !almostEqual(overall.MoodPalette, 3.5) {
		t.Errorf("MoodPalette = %g, want 3.5", overall.MoodPalette)
	}
	if overall.StyleLabel != StyleTransitional {
		t.Errorf("StyleLabel = %q, want %q", overall.StyleLabel, StyleTransitional)
	}
}

// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package report

// Style labels produced by Classify.
const (
	StyleContemporary = "Contemporary"
	StyleTransitional = "Transitional"
	StyleTraditional  = "Traditional"
)

// Classification thresholds on the 1-5 style-era scale. The boundaries
// themselves (exactly 2.5 and exactly 3.5) classify as transitional.
const (
	contemporaryBelow = 2.5
	traditionalAbove  = 3.5
)

// Classify maps an average style-era metric to a qualitative label.
// Total, pure, and deterministic.
func Classify(avgStyleEra float64) string {
	switch {
	case avgStyleEra < contemporaryBelow:
		return StyleContemporary
	case avgStyleEra > traditionalAbove:
		return StyleTraditional
	default:
		return StyleTransitional
	}
}

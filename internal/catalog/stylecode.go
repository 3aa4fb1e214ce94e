// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package catalog

import (
	"errors"
	"path"
	"regexp"
	"strconv"
)

// ErrNoStyleCode indicates an image reference that carries no embedded style
// code (legacy catalog naming). Callers recover with neutral defaults.
var ErrNoStyleCode = errors.New("image reference has no embedded style code")

// StyleCode holds the discrete style identifiers embedded in an image
// reference. Era (AS), Descriptor (VD), and Mood (MP) are each in [1, 9].
// Descriptor and Mood are zero when the reference uses the legacy AS-only
// form; HasDetail distinguishes the two shapes.
type StyleCode struct {
	// Era is the architectural style code (AS), 1 = contemporary, 9 = period.
	Era int

	// Descriptor is the secondary visual descriptor code (VD), or 0 when absent.
	Descriptor int

	// Mood is the mood/palette code (MP), or 0 when absent.
	Mood int
}

// HasDetail reports whether the reference carried the full AS/VD/MP triple.
// Legacy references encode only the AS code.
func (c StyleCode) HasDetail() bool {
	return c.Descriptor != 0 && c.Mood != 0
}

// Image reference pattern: <CATEGORY>-<seq>_<position>_AS<d>_VD<d>_MP<d>.<ext>
// where each <d> is a single digit in [1,9]. The legacy form stops after the
// AS code. Matching runs on the basename so references may carry any path or
// URL prefix.
var (
	styleCodeFullRe   = regexp.MustCompile(`_AS([1-9])_VD([1-9])_MP([1-9])\.[A-Za-z0-9]+$`)
	styleCodeLegacyRe = regexp.MustCompile(`_AS([1-9])\.[A-Za-z0-9]+$`)
)

// ParseStyleCode extracts the embedded style code from an image reference.
//
// The full form yields all three codes. The legacy AS-only form yields the
// era code with Descriptor and Mood unset. References without any embedded
// code return ErrNoStyleCode; callers must treat that as "no data", not as a
// fatal condition.
func ParseStyleCode(ref string) (StyleCode, error) {
	base := path.Base(ref)

	if m := styleCodeFullRe.FindStringSubmatch(base); m != nil {
		return StyleCode{
			Era:        mustDigit(m[1]),
			Descriptor: mustDigit(m[2]),
			Mood:       mustDigit(m[3]),
		}, nil
	}

	if m := styleCodeLegacyRe.FindStringSubmatch(base); m != nil {
		return StyleCode{Era: mustDigit(m[1])}, nil
	}

	return StyleCode{}, ErrNoStyleCode
}

// mustDigit converts a single regex-validated digit to int.
func mustDigit(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		// Unreachable: the regex guarantees a single digit 1-9.
		panic("catalog: non-digit capture from style code regex: " + s)
	}
	return n
}

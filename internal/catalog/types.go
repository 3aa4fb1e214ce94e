// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog lookups.
var (
	// ErrQuadNotFound indicates the requested quad ID is not in the library.
	ErrQuadNotFound = errors.New("quad not found in catalog")

	// ErrUnknownCategory indicates a category name or code that is not one of
	// the nine fixed categories.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownAxis indicates an axis name that is not one of the six fixed axes.
	ErrUnknownAxis = errors.New("unknown axis")
)

// Category identifies one of the nine fixed comparison categories.
// Using a typed constant instead of raw strings gives compile-time-checked
// access and removes "key not found" failure modes from hot paths.
type Category int

const (
	// CategoryLivingRoom covers living and family room scenes.
	CategoryLivingRoom Category = iota
	// CategoryBedroom covers bedroom scenes.
	CategoryBedroom
	// CategoryKitchen covers kitchen scenes.
	CategoryKitchen
	// CategoryDining covers dining room scenes.
	CategoryDining
	// CategoryBathroom covers bathroom scenes.
	CategoryBathroom
	// CategoryOffice covers home office and study scenes.
	CategoryOffice
	// CategoryOutdoor covers patio, garden, and exterior scenes.
	CategoryOutdoor
	// CategoryLighting covers fixtures and lighting compositions.
	CategoryLighting
	// CategoryArtDecor covers art and decorative object compositions.
	CategoryArtDecor

	// NumCategories is the fixed number of comparison categories.
	NumCategories = 9
)

// categoryNames maps categories to their canonical lowercase names used in
// configuration, URLs, and JSON.
var categoryNames = [NumCategories]string{
	"living_room",
	"bedroom",
	"kitchen",
	"dining",
	"bathroom",
	"office",
	"outdoor",
	"lighting",
	"art_decor",
}

// categoryCodes maps categories to the three-letter codes embedded in image
// reference strings (the <CATEGORY> part of the style-code pattern).
var categoryCodes = [NumCategories]string{
	"LIV",
	"BED",
	"KIT",
	"DIN",
	"BTH",
	"OFC",
	"OUT",
	"LGT",
	"ART",
}

// String returns the canonical lowercase name for the category.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Code returns the three-letter image reference code for the category.
func (c Category) Code() string {
	if !c.Valid() {
		return ""
	}
	return categoryCodes[c]
}

// Valid reports whether c is one of the nine fixed categories.
func (c Category) Valid() bool {
	return c >= CategoryLivingRoom && c <= CategoryArtDecor
}

// MarshalText implements encoding.TextMarshaler so categories serialize as
// their canonical names in JSON and YAML.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory resolves a canonical name or three-letter code to a Category.
func ParseCategory(s string) (Category, error) {
	for i := range categoryNames {
		if categoryNames[i] == s || categoryCodes[i] == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Categories returns all nine categories in fixed catalog order.
func Categories() [NumCategories]Category {
	return [NumCategories]Category{
		CategoryLivingRoom,
		CategoryBedroom,
		CategoryKitchen,
		CategoryDining,
		CategoryBathroom,
		CategoryOffice,
		CategoryOutdoor,
		CategoryLighting,
		CategoryArtDecor,
	}
}

// Axis identifies one of the six orthogonal taste-profile dimensions.
type Axis int

const (
	// AxisWarmth measures cozy/warm versus cool/stark preference.
	AxisWarmth Axis = iota
	// AxisFormality measures formal versus casual preference.
	AxisFormality
	// AxisDrama measures bold/dramatic versus subdued preference.
	AxisDrama
	// AxisTradition measures traditional versus contemporary preference.
	AxisTradition
	// AxisOpenness measures open-plan versus enclosed-space preference.
	// No catalog attribute source exists yet; scores default to the midpoint.
	AxisOpenness
	// AxisArtFocus measures art-centric versus architecture-centric preference.
	// No catalog attribute source exists yet; scores default to the midpoint.
	AxisArtFocus

	// NumAxes is the fixed number of profile axes.
	NumAxes = 6

	// NumAttributeAxes is the number of axes with catalog attribute sources.
	NumAttributeAxes = 4
)

// axisNames maps axes to their canonical names.
var axisNames = [NumAxes]string{
	"warmth",
	"formality",
	"drama",
	"tradition",
	"openness",
	"art_focus",
}

// String returns the canonical name for the axis.
func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

// Valid reports whether a is one of the six fixed axes.
func (a Axis) Valid() bool {
	return a >= AxisWarmth && a <= AxisArtFocus
}

// HasAttributeSource reports whether the axis has per-image attribute values
// in the catalog. Openness and art focus do not.
func (a Axis) HasAttributeSource() bool {
	return a >= AxisWarmth && a <= AxisTradition
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAxis, int(a))
	}
	return []byte(axisNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	for i := range axisNames {
		if axisNames[i] == string(text) {
			*a = Axis(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownAxis, string(text))
}

// Axes returns all six axes in fixed order.
func Axes() [NumAxes]Axis {
	return [NumAxes]Axis{
		AxisWarmth,
		AxisFormality,
		AxisDrama,
		AxisTradition,
		AxisOpenness,
		AxisArtFocus,
	}
}

// AttributeAxes returns the four axes that have catalog attribute sources.
func AttributeAxes() [NumAttributeAxes]Axis {
	return [NumAttributeAxes]Axis{AxisWarmth, AxisFormality, AxisDrama, AxisTradition}
}

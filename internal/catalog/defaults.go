// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

package catalog

// DefaultQuads returns the built-in comparison catalog: two quads per
// category in fixed questionnaire order. Image references follow the
// <CATEGORY>-<seq>_<position>_AS<d>_VD<d>_MP<d>.<ext> naming scheme; a few
// older assets still use legacy names without the VD/MP suffix.
func DefaultQuads() []Quad {
	return []Quad{
		{
			ID:       "liv-01",
			Category: CategoryLivingRoom,
			Images: [QuadImages]string{
				"images/liv/LIV-01_0_AS2_VD4_MP3.jpg",
				"images/liv/LIV-01_1_AS5_VD6_MP5.jpg",
				"images/liv/LIV-01_2_AS7_VD3_MP7.jpg",
				"images/liv/LIV-01_3_AS9_VD8_MP2.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{3, 5, 7, 9},
				Formality: [QuadImages]float64{2, 5, 6, 8},
				Drama:     [QuadImages]float64{4, 3, 7, 6},
				Tradition: [QuadImages]float64{2, 4, 7, 9},
			},
		},
		{
			ID:       "liv-02",
			Category: CategoryLivingRoom,
			Images: [QuadImages]string{
				"images/liv/LIV-02_0_AS1_VD2_MP6.jpg",
				"images/liv/LIV-02_1_AS4_VD5_MP4.jpg",
				"images/liv/LIV-02_2_AS6_VD7_MP8.jpg",
				"images/liv/LIV-02_3_AS8_VD1_MP1.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{2, 4, 6, 8},
				Formality: [QuadImages]float64{3, 4, 7, 9},
				Drama:     [QuadImages]float64{6, 2, 5, 8},
				Tradition: [QuadImages]float64{1, 3, 6, 9},
			},
		},
		{
			ID:       "bed-01",
			Category: CategoryBedroom,
			Images: [QuadImages]string{
				"images/bed/BED-01_0_AS3_VD5_MP2.jpg",
				"images/bed/BED-01_1_AS5_VD2_MP6.jpg",
				"images/bed/BED-01_2_AS6_VD8_MP4.jpg",
				"images/bed/BED-01_3_AS8_VD4_MP9.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{4, 6, 5, 8},
				Formality: [QuadImages]float64{3, 5, 6, 7},
				Drama:     [QuadImages]float64{2, 4, 6, 5},
				Tradition: [QuadImages]float64{3, 5, 6, 8},
			},
		},
		{
			ID:       "bed-02",
			Category: CategoryBedroom,
			Images: [QuadImages]string{
				"images/bed/BED-02_0_AS2_VD6_MP5.jpg",
				"images/bed/BED-02_1_AS4_VD3_MP3.jpg",
				"images/bed/BED-02_2_AS7_VD7_MP6.jpg",
				"images/bed/BED-02_3_AS9_VD5_MP8.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{3, 5, 7, 8},
				Formality: [QuadImages]float64{2, 4, 6, 8},
				Drama:     [QuadImages]float64{5, 3, 6, 7},
				Tradition: [QuadImages]float64{2, 4, 7, 9},
			},
		},
		{
			ID:       "kit-01",
			Category: CategoryKitchen,
			Images: [QuadImages]string{
				"images/kit/KIT-01_0_AS1_VD3_MP4.jpg",
				"images/kit/KIT-01_1_AS3_VD6_MP2.jpg",
				"images/kit/KIT-01_2_AS6_VD4_MP7.jpg",
				"images/kit/KIT-01_3_AS8_VD7_MP5.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{2, 4, 7, 9},
				Formality: [QuadImages]float64{4, 3, 6, 7},
				Drama:     [QuadImages]float64{5, 2, 4, 7},
				Tradition: [QuadImages]float64{1, 4, 6, 8},
			},
		},
		{
			ID:       "kit-02",
			Category: CategoryKitchen,
			Images: [QuadImages]string{
				"images/kit/KIT-02_0_AS2_VD5_MP1.jpg",
				"images/kit/KIT-02_1_AS5_VD3_MP5.jpg",
				"images/kit/KIT-02_2_AS7_VD8_MP3.jpg",
				"images/kit/KIT-02_3_AS9_VD6_MP7.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{3, 5, 6, 9},
				Formality: [QuadImages]float64{2, 5, 7, 8},
				Drama:     [QuadImages]float64{4, 4, 6, 8},
				Tradition: [QuadImages]float64{2, 5, 7, 9},
			},
		},
		{
			ID:       "din-01",
			Category: CategoryDining,
			Images: [QuadImages]string{
				"images/din/DIN-01_0_AS2_VD2_MP3.jpg",
				"images/din/DIN-01_1_AS4_VD7_MP5.jpg",
				"images/din/DIN-01_2_AS6_VD5_MP8.jpg",
				"images/din/DIN-01_3_AS9_VD4_MP6.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{3, 5, 6, 8},
				Formality: [QuadImages]float64{4, 6, 7, 9},
				Drama:     [QuadImages]float64{3, 5, 7, 6},
				Tradition: [QuadImages]float64{2, 4, 6, 9},
			},
		},
		{
			ID:       "din-02",
			Category: CategoryDining,
			Images: [QuadImages]string{
				"images/din/DIN-02_0_AS1_VD4_MP2.jpg",
				"images/din/DIN-02_1_AS3_VD1_MP7.jpg",
				"images/din/DIN-02_2_AS7_VD6_MP4.jpg",
				"images/din/DIN-02_3_AS8_VD8_MP9.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{2, 5, 7, 8},
				Formality: [QuadImages]float64{3, 4, 7, 8},
				Drama:     [QuadImages]float64{4, 6, 5, 9},
				Tradition: [QuadImages]float64{1, 3, 7, 8},
			},
		},
		{
			ID:       "bth-01",
			Category: CategoryBathroom,
			Images: [QuadImages]string{
				"images/bth/BTH-01_0_AS2_VD3_MP5.jpg",
				"images/bth/BTH-01_1_AS4_VD6_MP3.jpg",
				"images/bth/BTH-01_2_AS6_VD2_MP6.jpg",
				"images/bth/BTH-01_3_AS8_VD5_MP8.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{3, 4, 6, 7},
				Formality: [QuadImages]float64{4, 5, 6, 8},
				Drama:     [QuadImages]float64{2, 5, 4, 7},
				Tradition: [QuadImages]float64{2, 4, 6, 8},
			},
		},
		{
			ID:       "bth-02",
			Category: CategoryBathroom,
			Images: [QuadImages]string{
				"images/bth/BTH-02_0_AS1_VD5_MP4.jpg",
				"images/bth/BTH-02_1_AS3_VD8_MP2.jpg",
				"images/bth/BTH-02_2_AS5_VD4_MP7.jpg",
				"images/bth/BTH-02_3_AS7_VD7_MP6.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{2, 3, 5, 8},
				Formality: [QuadImages]float64{3, 5, 7, 7},
				Drama:     [QuadImages]float64{5, 6, 3, 6},
				Tradition: [QuadImages]float64{1, 4, 5, 8},
			},
		},
		{
			ID:       "ofc-01",
			Category: CategoryOffice,
			Images: [QuadImages]string{
				"images/ofc/OFC-01_0_AS2_VD6_MP2.jpg",
				"images/ofc/OFC-01_1_AS4_VD4_MP6.jpg",
				"images/ofc/OFC-01_2_AS6_VD7_MP4.jpg",
				"images/ofc/OFC-01_3_AS9_VD3_MP7.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{3, 5, 6, 8},
				Formality: [QuadImages]float64{5, 6, 7, 9},
				Drama:     [QuadImages]float64{3, 4, 6, 5},
				Tradition: [QuadImages]float64{2, 5, 7, 9},
			},
		},
		{
			ID:       "ofc-02",
			Category: CategoryOffice,
			Images: [QuadImages]string{
				"images/ofc/OFC-02_0_AS1_VD2_MP5.jpg",
				"images/ofc/OFC-02_1_AS5_VD5_MP3.jpg",
				"images/ofc/OFC-02_2_AS7_VD1_MP8.jpg",
				"images/ofc/OFC-02_3_AS8_VD6_MP6.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{2, 5, 6, 7},
				Formality: [QuadImages]float64{4, 6, 8, 8},
				Drama:     [QuadImages]float64{4, 3, 7, 6},
				Tradition: [QuadImages]float64{1, 5, 7, 8},
			},
		},
		{
			ID:       "out-01",
			Category: CategoryOutdoor,
			Images: [QuadImages]string{
				"images/out/OUT-01_0_AS2_VD4_MP6.jpg",
				"images/out/OUT-01_1_AS4_VD7_MP4.jpg",
				"images/out/OUT-01_2_AS6_VD3_MP2.jpg",
				"images/out/OUT-01_3_AS8_VD6_MP8.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{4, 5, 6, 8},
				Formality: [QuadImages]float64{2, 4, 5, 7},
				Drama:     [QuadImages]float64{3, 6, 4, 8},
				Tradition: [QuadImages]float64{2, 4, 6, 8},
			},
		},
		{
			// Older asset set: positions 2 and 3 predate the VD/MP suffix.
			ID:       "out-02",
			Category: CategoryOutdoor,
			Images: [QuadImages]string{
				"images/out/OUT-02_0_AS3_VD5_MP3.jpg",
				"images/out/OUT-02_1_AS5_VD2_MP7.jpg",
				"images/out/OUT-02_2_AS7.jpg",
				"images/out/OUT-02_3_AS9.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{3, 5, 7, 9},
				Formality: [QuadImages]float64{3, 5, 6, 8},
				Drama:     [QuadImages]float64{4, 5, 6, 7},
				Tradition: [QuadImages]float64{3, 5, 7, 9},
			},
		},
		{
			ID:       "lgt-01",
			Category: CategoryLighting,
			Images: [QuadImages]string{
				"images/lgt/LGT-01_0_AS1_VD6_MP1.jpg",
				"images/lgt/LGT-01_1_AS4_VD3_MP5.jpg",
				"images/lgt/LGT-01_2_AS6_VD8_MP3.jpg",
				"images/lgt/LGT-01_3_AS9_VD5_MP7.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{2, 5, 6, 9},
				Formality: [QuadImages]float64{3, 4, 6, 8},
				Drama:     [QuadImages]float64{6, 3, 7, 8},
				Tradition: [QuadImages]float64{1, 4, 6, 9},
			},
		},
		{
			ID:       "lgt-02",
			Category: CategoryLighting,
			Images: [QuadImages]string{
				"images/lgt/LGT-02_0_AS2_VD2_MP4.jpg",
				"images/lgt/LGT-02_1_AS5_VD7_MP2.jpg",
				"images/lgt/LGT-02_2_AS7_VD4_MP6.jpg",
				"images/lgt/LGT-02_3_AS8_VD8_MP8.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{3, 4, 7, 8},
				Formality: [QuadImages]float64{2, 5, 7, 7},
				Drama:     [QuadImages]float64{5, 6, 4, 9},
				Tradition: [QuadImages]float64{2, 5, 6, 8},
			},
		},
		{
			ID:       "art-01",
			Category: CategoryArtDecor,
			Images: [QuadImages]string{
				"images/art/ART-01_0_AS2_VD5_MP2.jpg",
				"images/art/ART-01_1_AS4_VD1_MP6.jpg",
				"images/art/ART-01_2_AS6_VD6_MP4.jpg",
				"images/art/ART-01_3_AS8_VD3_MP9.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{3, 5, 6, 8},
				Formality: [QuadImages]float64{3, 4, 6, 7},
				Drama:     [QuadImages]float64{4, 6, 5, 9},
				Tradition: [QuadImages]float64{2, 4, 7, 9},
			},
		},
		{
			// Scanned plates from the print archive, never renamed.
			ID:       "art-02",
			Category: CategoryArtDecor,
			Images: [QuadImages]string{
				"images/art/plate-047.jpg",
				"images/art/plate-112.jpg",
				"images/art/ART-02_2_AS6_VD7_MP5.jpg",
				"images/art/ART-02_3_AS9_VD2_MP3.jpg",
			},
			Attributes: &AttributeSet{
				Warmth:    [QuadImages]float64{4, 5, 6, 8},
				Formality: [QuadImages]float64{3, 5, 7, 8},
				Drama:     [QuadImages]float64{5, 4, 6, 8},
				Tradition: [QuadImages]float64{3, 5, 7, 9},
			},
		},
	}
}

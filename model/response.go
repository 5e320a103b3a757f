package model

import "wada-stylist/internal/domain/entities"

// ColorFile is the shape of color.json.
type ColorFile struct {
	Colors []ColorRecord `json:"colors"`
}

// ColorRecord represents a single palette entry on disk
type ColorRecord struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	RGB   string `json:"rgb"`
	// 印刷用の値（任意）
	CMYK         string `json:"cmyk,omitempty"`
	Combinations []int  `json:"combinations"`
}

// CombinationFile is the shape of combined_colors.json.
type CombinationFile struct {
	Combinations []CombinationRecord `json:"combinations"`
}

// CombinationRecord represents one curated combination. Index is optional on disk;
// records without it are numbered by their 0-based position, the way color.json refers to them.
type CombinationRecord struct {
	Index *int     `json:"index,omitempty"`
	Names []string `json:"names"`
	Codes []string `json:"codes"`
}

func (f ColorFile) ToEntities() []entities.PaletteColor {
	colors := make([]entities.PaletteColor, 0, len(f.Colors))
	for _, c := range f.Colors {
		colors = append(colors, entities.PaletteColor{
			Index:        c.Index,
			Name:         c.Name,
			Hex:          c.Hex,
			RGB:          c.RGB,
			CMYK:         c.CMYK,
			Combinations: append([]int(nil), c.Combinations...),
		})
	}
	return colors
}

func (f CombinationFile) ToEntities() []entities.Combination {
	combinations := make([]entities.Combination, 0, len(f.Combinations))
	for i, c := range f.Combinations {
		index := i
		if c.Index != nil {
			index = *c.Index
		}
		combinations = append(combinations, entities.Combination{
			Index: index,
			Names: append([]string(nil), c.Names...),
			Codes: append([]string(nil), c.Codes...),
		})
	}
	return combinations
}

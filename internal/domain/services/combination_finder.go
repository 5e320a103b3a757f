package services

import (
	"log/slog"

	"wada-stylist/internal/domain/entities"
)

type CombinationFinder struct {
	palette *entities.Palette
}

func NewCombinationFinder(palette *entities.Palette) *CombinationFinder {
	return &CombinationFinder{palette: palette}
}

// Find returns every combination referenced by the detected colors, once each, in the order
// they were first reached. Names are re-resolved by exact match only.
func (f *CombinationFinder) Find(detected []entities.DetectedColor) []entities.Combination {
	seen := make(map[int]struct{})
	result := []entities.Combination{}

	for _, d := range detected {
		color, ok := f.palette.ExactColor(d.Name)
		if !ok {
			slog.Warn("Detected color is not in the palette", "color", d.Name)
			continue
		}
		if len(color.Combinations) == 0 {
			slog.Info("No combinations for color", "color", color.Name)
			continue
		}

		for _, comb := range f.palette.CombinationsForColor(color) {
			if _, dup := seen[comb.Index]; dup {
				continue
			}
			seen[comb.Index] = struct{}{}
			result = append(result, comb)
		}
	}

	return result
}

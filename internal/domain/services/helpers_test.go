package services

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/valueobjects"
)

// samplePalette mirrors the shape of the real datasets on a handful of entries.
func samplePalette() *entities.Palette {
	colors := []entities.PaletteColor{
		{Index: 1, Name: "Red", Hex: "#d2252e", RGB: "210, 37, 46", Combinations: []int{1, 2}},
		{Index: 2, Name: "Red Orange", Hex: "#e8452b", RGB: "232, 69, 43", Combinations: []int{2}},
		{Index: 3, Name: "Scarlet", Hex: "#f0341b", RGB: "240, 52, 27", Combinations: []int{3, 5}},
		{Index: 4, Name: "Olive Buff", Hex: "#bcb875", RGB: "188, 184, 117", Combinations: []int{1, 4}},
		{Index: 5, Name: "Hermosa Pink", Hex: "#f9b0c6", RGB: "249, 176, 198", Combinations: []int{4, 99}},
		{Index: 6, Name: "Cobalt Green", Hex: "#94d6a5", RGB: "148, 214, 165", Combinations: []int{}},
	}
	combinations := []entities.Combination{
		{Index: 1, Names: []string{"Red", "Olive Buff"}, Codes: []string{"R:210 / G:37 / B:46", "R:188 / G:184 / B:117"}},
		{Index: 2, Names: []string{"Red", "Red Orange"}, Codes: []string{"R:210 / G:37 / B:46", "R:232 / G:69 / B:43"}},
		{Index: 3, Names: []string{"Scarlet", "Olive Buff"}, Codes: []string{"R:240 / G:52 / B:27", "R:188 / G:184 / B:117"}},
		{Index: 4, Names: []string{"Olive Buff", "Hermosa Pink"}, Codes: []string{"R:188 / G:184 / B:117", "R:249 / G:176 / B:198"}},
		{Index: 5, Names: []string{"Scarlet", "Hermosa Pink", "Cobalt Green"}, Codes: []string{"R:240 / G:52 / B:27", "R:249 / G:176 / B:198", "R:148 / G:214 / B:165"}},
	}
	return entities.NewPalette(colors, combinations)
}

func newTestImage(t *testing.T) *valueobjects.ImageData {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	data, err := valueobjects.NewImageData(buf.Bytes(), "image/png")
	if err != nil {
		t.Fatalf("Failed to create ImageData: %v", err)
	}
	return data
}

func indices(combs []entities.Combination) []int {
	out := make([]int, len(combs))
	for i, c := range combs {
		out[i] = c.Index
	}
	return out
}

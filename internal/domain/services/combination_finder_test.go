package services

import (
	"reflect"
	"testing"

	"wada-stylist/internal/domain/entities"
)

func TestCombinationFinder_Find(t *testing.T) {
	finder := NewCombinationFinder(samplePalette())

	tests := []struct {
		name     string
		detected []entities.DetectedColor
		want     []int
	}{
		{
			name:     "no detected colors",
			detected: nil,
			want:     []int{},
		},
		{
			name:     "single color",
			detected: []entities.DetectedColor{{Clothing: "Shirt", Name: "Scarlet"}},
			want:     []int{3, 5},
		},
		{
			name: "shared combinations appear once in first insertion order",
			detected: []entities.DetectedColor{
				{Clothing: "Shirt", Name: "Red"},
				{Clothing: "Pants", Name: "Olive Buff"},
				{Clothing: "Shoes", Name: "Red Orange"},
			},
			want: []int{1, 2, 4},
		},
		{
			name: "names are re-resolved exactly without fuzzy matching",
			detected: []entities.DetectedColor{
				{Clothing: "Shirt", Name: "scarlet"},
				{Clothing: "Hat", Name: "Hermosa"},
			},
			want: []int{3, 5},
		},
		{
			name: "missing combinations and empty lists are skipped",
			detected: []entities.DetectedColor{
				{Clothing: "Scarf", Name: "Hermosa Pink"},
				{Clothing: "Socks", Name: "Cobalt Green"},
			},
			want: []int{4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := indices(finder.Find(tt.detected))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Find() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCombinationFinder_NoDuplicates(t *testing.T) {
	finder := NewCombinationFinder(samplePalette())
	detected := []entities.DetectedColor{
		{Clothing: "Shirt", Name: "Red"},
		{Clothing: "Jacket", Name: "Red"},
		{Clothing: "Pants", Name: "Olive Buff"},
		{Clothing: "Bag", Name: "Scarlet"},
	}

	seen := map[int]bool{}
	for _, c := range finder.Find(detected) {
		if seen[c.Index] {
			t.Fatalf("combination %d returned twice", c.Index)
		}
		seen[c.Index] = true
	}
}

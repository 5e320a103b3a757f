package services

import (
	"testing"

	"wada-stylist/internal/domain/entities"
)

func TestColorMatcher_Match(t *testing.T) {
	matcher := NewColorMatcher(samplePalette())

	tests := []struct {
		name      string
		input     string
		wantName  string
		wantMatch bool
	}{
		{name: "exact match", input: "Scarlet", wantName: "Scarlet", wantMatch: true},
		{name: "exact match ignores case", input: "olive BUFF", wantName: "Olive Buff", wantMatch: true},
		{name: "exact match beats earlier fuzzy candidate", input: "red orange", wantName: "Red Orange", wantMatch: true},
		{name: "input contained in palette name", input: "Hermosa", wantName: "Hermosa Pink", wantMatch: true},
		{name: "palette name contained in input", input: "Dark Scarlet Red", wantName: "Red", wantMatch: true},
		{name: "no match", input: "Ultramarine", wantMatch: false},
		{name: "blank input", input: "   ", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matcher.Match(tt.input)
			if ok != tt.wantMatch {
				t.Fatalf("Match(%q) matched = %v, want %v", tt.input, ok, tt.wantMatch)
			}
			if ok && got.Name != tt.wantName {
				t.Errorf("Match(%q) = %q, want %q", tt.input, got.Name, tt.wantName)
			}
		})
	}
}

func TestColorMatcher_FuzzyTieBreakFollowsPaletteOrder(t *testing.T) {
	palette := entities.NewPalette([]entities.PaletteColor{
		{Index: 1, Name: "Red"},
		{Index: 2, Name: "Red Orange"},
	}, nil)
	matcher := NewColorMatcher(palette)

	got, ok := matcher.Match("red")
	if !ok || got.Name != "Red" {
		t.Errorf("Match(red) = %q, want Red", got.Name)
	}

	// 完全一致がない場合は宣言順で最初の部分一致
	reversed := NewColorMatcher(entities.NewPalette([]entities.PaletteColor{
		{Index: 1, Name: "Orange Red"},
		{Index: 2, Name: "Red Orange"},
	}, nil))
	got, ok = reversed.Match("red")
	if !ok || got.Name != "Orange Red" {
		t.Errorf("Match(red) = %q, want Orange Red", got.Name)
	}
}

package entities

import (
	"strings"
	"testing"
)

func testPalette() *Palette {
	colors := []PaletteColor{
		{Index: 1, Name: "Hermosa Pink", Hex: "#f9b0c6", RGB: "249, 176, 198", Combinations: []int{1, 2}},
		{Index: 2, Name: "Scarlet", Hex: "#f0341b", RGB: "240, 52, 27", Combinations: []int{2, 3}},
		{Index: 3, Name: "Red", Hex: "#d2252e", RGB: "210, 37, 46", Combinations: []int{3}},
	}
	combinations := []Combination{
		{Index: 1, Names: []string{"Hermosa Pink", "Red"}, Codes: []string{"R:249 / G:176 / B:198", "R:210 / G:37 / B:46"}},
		{Index: 2, Names: []string{"Hermosa Pink", "Scarlet"}, Codes: []string{"R:249 / G:176 / B:198", "R:240 / G:52 / B:27"}},
		{Index: 3, Names: []string{"Scarlet", "Red"}, Codes: []string{"R:240 / G:52 / B:27", "R:210 / G:37 / B:46"}},
	}
	return NewPalette(colors, combinations)
}

func TestPalette_Lookups(t *testing.T) {
	p := testPalette()

	t.Run("exact color ignores case", func(t *testing.T) {
		c, ok := p.ExactColor("  scarlet ")
		if !ok || c.Index != 2 {
			t.Errorf("ExactColor() = %+v, %v", c, ok)
		}
	})

	t.Run("unknown color", func(t *testing.T) {
		if _, ok := p.ExactColor("Scar"); ok {
			t.Errorf("ExactColor() should not match partial names")
		}
	})

	t.Run("color by index", func(t *testing.T) {
		c, ok := p.ColorByIndex(3)
		if !ok || c.Name != "Red" {
			t.Errorf("ColorByIndex(3) = %+v, %v", c, ok)
		}
	})

	t.Run("combinations are ordered by index", func(t *testing.T) {
		all := p.Combinations()
		for i := range all {
			if all[i].Index != i+1 {
				t.Fatalf("Combinations()[%d].Index = %d", i, all[i].Index)
			}
		}
	})

	t.Run("names keep declaration order", func(t *testing.T) {
		got := strings.Join(p.Names(), ",")
		if got != "Hermosa Pink,Scarlet,Red" {
			t.Errorf("Names() = %s", got)
		}
	})

	t.Run("combinations for color skip dangling indices", func(t *testing.T) {
		c := PaletteColor{Name: "Ghost", Combinations: []int{3, 99, 1}}
		got := p.CombinationsForColor(c)
		if len(got) != 2 || got[0].Index != 3 || got[1].Index != 1 {
			t.Errorf("CombinationsForColor() = %+v", got)
		}
	})
}

func TestPalette_Validate(t *testing.T) {
	t.Run("consistent dataset", func(t *testing.T) {
		if problems := testPalette().Validate(); len(problems) != 0 {
			t.Errorf("Validate() = %v, want none", problems)
		}
	})

	t.Run("integrity problems are reported", func(t *testing.T) {
		p := NewPalette(
			[]PaletteColor{
				{Index: 1, Name: "Red", Combinations: []int{1, 7}},
				{Index: 2, Name: "RED", Combinations: []int{1}},
			},
			[]Combination{
				{Index: 1, Names: []string{"Red", "Red"}, Codes: []string{"R:1 / G:2 / B:3"}},
			},
		)

		problems := p.Validate()
		joined := strings.Join(problems, "\n")
		for _, want := range []string{"combination 7 does not exist", "duplicates color 1", "2 names but 1 codes"} {
			if !strings.Contains(joined, want) {
				t.Errorf("Validate() missing %q in %v", want, problems)
			}
		}
	})
}

func TestParseRGBCode(t *testing.T) {
	tests := []struct {
		code    string
		want    RGB
		wantErr bool
	}{
		{code: "R:249 / G:176 / B:198", want: RGB{249, 176, 198}},
		{code: "r:0/g:0/b:0", want: RGB{0, 0, 0}},
		{code: "R:256 / G:0 / B:0", wantErr: true},
		{code: "G:1 / R:2 / B:3", wantErr: true},
		{code: "#ffffff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseRGBCode(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRGBCode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRGBCode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCombination_NameMatching(t *testing.T) {
	c := Combination{Index: 1, Names: []string{"Scarlet", "Olive Buff"}}

	if !c.HasName("olive buff") {
		t.Errorf("HasName() should ignore case")
	}
	if c.ContainsExact("scarlet") {
		t.Errorf("ContainsExact() should be case sensitive")
	}
	if !c.ContainsExact("Scarlet") {
		t.Errorf("ContainsExact() should match exact name")
	}
}

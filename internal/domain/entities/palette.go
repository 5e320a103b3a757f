package entities

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// PaletteColor is one named entry of the reference palette.
type PaletteColor struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	Hex          string `json:"hex"`
	RGB          string `json:"rgb"`
	CMYK         string `json:"cmyk,omitempty"`
	Combinations []int  `json:"combinations"`
}

// Combination is a curated set of palette colors that work together.
type Combination struct {
	Index int      `json:"index"`
	Names []string `json:"names"`
	Codes []string `json:"codes"`
}

// HasName reports whether the combination contains name, ignoring case.
func (c Combination) HasName(name string) bool {
	for _, n := range c.Names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// ContainsExact is the case-sensitive variant used by the single color filter.
func (c Combination) ContainsExact(name string) bool {
	for _, n := range c.Names {
		if n == name {
			return true
		}
	}
	return false
}

type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ParseRGBCode parses codes of the form "R:12 / G:34 / B:56".
func ParseRGBCode(code string) (RGB, error) {
	var rgb RGB
	parts := strings.Split(code, "/")
	if len(parts) != 3 {
		return rgb, fmt.Errorf("invalid rgb code %q", code)
	}

	targets := []struct {
		label string
		dst   *int
	}{{"R", &rgb.R}, {"G", &rgb.G}, {"B", &rgb.B}}

	for i, part := range parts {
		label, value, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(label), targets[i].label) {
			return rgb, fmt.Errorf("invalid rgb code %q", code)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 || n > 255 {
			return rgb, fmt.Errorf("invalid %s channel in %q", targets[i].label, code)
		}
		*targets[i].dst = n
	}

	return rgb, nil
}

// Palette holds the reference colors and combinations. It is built once and never mutated,
// so it can be shared by any number of requests.
type Palette struct {
	colors       []PaletteColor
	combinations map[int]Combination
	byIndex      map[int]int
	byName       map[string]int
}

func NewPalette(colors []PaletteColor, combinations []Combination) *Palette {
	p := &Palette{
		colors:       make([]PaletteColor, len(colors)),
		combinations: make(map[int]Combination, len(combinations)),
		byIndex:      make(map[int]int, len(colors)),
		byName:       make(map[string]int, len(colors)),
	}
	copy(p.colors, colors)

	for i, c := range p.colors {
		if _, exists := p.byIndex[c.Index]; !exists {
			p.byIndex[c.Index] = i
		}
		key := strings.ToLower(c.Name)
		// 同名の場合は先に宣言された色を優先
		if _, exists := p.byName[key]; !exists {
			p.byName[key] = i
		}
	}

	for _, comb := range combinations {
		if _, exists := p.combinations[comb.Index]; !exists {
			p.combinations[comb.Index] = comb
		}
	}

	return p
}

// Colors returns the palette in declaration order.
func (p *Palette) Colors() []PaletteColor {
	out := make([]PaletteColor, len(p.colors))
	copy(out, p.colors)
	return out
}

func (p *Palette) Len() int {
	return len(p.colors)
}

func (p *Palette) Names() []string {
	names := make([]string, len(p.colors))
	for i, c := range p.colors {
		names[i] = c.Name
	}
	return names
}

func (p *Palette) ColorByIndex(index int) (PaletteColor, bool) {
	i, ok := p.byIndex[index]
	if !ok {
		return PaletteColor{}, false
	}
	return p.colors[i], true
}

// ExactColor looks a name up case-insensitively.
func (p *Palette) ExactColor(name string) (PaletteColor, bool) {
	i, ok := p.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PaletteColor{}, false
	}
	return p.colors[i], true
}

func (p *Palette) Combination(index int) (Combination, bool) {
	c, ok := p.combinations[index]
	return c, ok
}

// Combinations returns every combination ordered by index.
func (p *Palette) Combinations() []Combination {
	out := make([]Combination, 0, len(p.combinations))
	for _, c := range p.combinations {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func (p *Palette) CombinationCount() int {
	return len(p.combinations)
}

// CombinationsForColor resolves the color's combination list, skipping dangling indices.
func (p *Palette) CombinationsForColor(color PaletteColor) []Combination {
	out := make([]Combination, 0, len(color.Combinations))
	for _, idx := range color.Combinations {
		comb, ok := p.combinations[idx]
		if !ok {
			slog.Warn("Combination not found", "color", color.Name, "combinationIndex", idx)
			continue
		}
		out = append(out, comb)
	}
	return out
}

// Validate reports dataset integrity problems. The palette stays usable when problems exist.
func (p *Palette) Validate() []string {
	var problems []string

	seen := make(map[string]int)
	for _, c := range p.colors {
		key := strings.ToLower(c.Name)
		if first, dup := seen[key]; dup {
			problems = append(problems, fmt.Sprintf("color %d: name %q duplicates color %d", c.Index, c.Name, first))
		} else {
			seen[key] = c.Index
		}

		for _, idx := range c.Combinations {
			if _, ok := p.combinations[idx]; !ok {
				problems = append(problems, fmt.Sprintf("color %d (%s): combination %d does not exist", c.Index, c.Name, idx))
			}
		}
	}

	for _, comb := range p.Combinations() {
		if len(comb.Names) != len(comb.Codes) {
			problems = append(problems, fmt.Sprintf("combination %d: %d names but %d codes", comb.Index, len(comb.Names), len(comb.Codes)))
		}
		for _, code := range comb.Codes {
			if _, err := ParseRGBCode(code); err != nil {
				problems = append(problems, fmt.Sprintf("combination %d: %v", comb.Index, err))
			}
		}
	}

	return problems
}

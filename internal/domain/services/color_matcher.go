package services

import (
	"strings"

	"wada-stylist/internal/domain/entities"
)

// ColorMatcher maps free-text color names onto palette entries.
type ColorMatcher struct {
	palette *entities.Palette
}

func NewColorMatcher(palette *entities.Palette) *ColorMatcher {
	return &ColorMatcher{palette: palette}
}

// Match prefers an exact case-insensitive name, then the first palette entry (in declaration
// order) whose name contains the input or is contained by it.
func (m *ColorMatcher) Match(name string) (entities.PaletteColor, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return entities.PaletteColor{}, false
	}

	if c, ok := m.palette.ExactColor(needle); ok {
		return c, true
	}

	for _, c := range m.palette.Colors() {
		candidate := strings.ToLower(c.Name)
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return c, true
		}
	}

	return entities.PaletteColor{}, false
}

package valueobjects

import "strings"

// Style is one of the fixed aesthetic presets used to parameterize outfit generation.
type Style string

const (
	StyleCasual   Style = "casual"
	StyleFormal   Style = "formal"
	StyleBusiness Style = "business"
	StyleElegant  Style = "elegant"
	StyleSporty   Style = "sporty"
	StyleVintage  Style = "vintage"
)

const DefaultStyle = StyleCasual

var styleInstructions = map[Style]string{
	StyleCasual:   "Create a relaxed, comfortable, and everyday casual outfit. Use casual cuts, comfortable fabrics, and laid-back styling.",
	StyleFormal:   "Create an elegant, sophisticated formal outfit suitable for special occasions. Use refined cuts, premium fabrics, and polished styling.",
	StyleBusiness: "Create a professional, office-appropriate business outfit. Use structured cuts, professional fabrics, and clean, polished styling.",
	StyleElegant:  "Create a refined, graceful, and sophisticated elegant outfit. Use flowing cuts, luxurious fabrics, and refined styling.",
	StyleSporty:   "Create an athletic, comfortable, and performance-inspired sporty outfit. Use functional cuts, technical fabrics, and active styling.",
	StyleVintage:  "Create a nostalgic, period-accurate vintage outfit inspired by the fashion of a specific past decade. Use historical cuts, era-specific fabrics, and retro styling.",
}

// Styles lists the supported presets in display order.
func Styles() []Style {
	return []Style{StyleCasual, StyleFormal, StyleBusiness, StyleElegant, StyleSporty, StyleVintage}
}

// ParseStyle never fails: unknown or empty keys fall back to casual.
func ParseStyle(key string) Style {
	s := Style(strings.ToLower(strings.TrimSpace(key)))
	if _, ok := styleInstructions[s]; ok {
		return s
	}
	return DefaultStyle
}

func (s Style) IsValid() bool {
	_, ok := styleInstructions[s]
	return ok
}

// Instruction returns the prompt paragraph for the style.
func (s Style) Instruction() string {
	if text, ok := styleInstructions[s]; ok {
		return text
	}
	return styleInstructions[DefaultStyle]
}

func (s Style) String() string {
	return string(s)
}

package valueobjects

import "strings"

const (
	GenderFemale = "Female"
	GenderMale   = "Male"
)

// NormalizeGender maps the free-text gender reported by the vision model onto Female/Male.
// "female" is checked first since it contains "male".
func NormalizeGender(value string) string {
	trimmed := strings.TrimSpace(value)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.Contains(lower, "female"):
		return GenderFemale
	case strings.Contains(lower, "male"):
		return GenderMale
	default:
		return trimmed
	}
}

// IsFemaleShopper reports whether a shop search should target the women's section.
func IsFemaleShopper(gender string) bool {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "female", "kadın", "woman":
		return true
	}
	return false
}

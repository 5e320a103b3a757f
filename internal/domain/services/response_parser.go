package services

import (
	"log/slog"
	"strings"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/valueobjects"
)

const genderKey = "gender"

// ResponseParser reads the "garment: Color" lines returned by the vision model.
type ResponseParser struct {
	matcher *ColorMatcher
}

func NewResponseParser(matcher *ColorMatcher) *ResponseParser {
	return &ResponseParser{matcher: matcher}
}

func (p *ResponseParser) Parse(text string) entities.AnalysisResult {
	result := entities.AnalysisResult{
		Colors: []entities.DetectedColor{},
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		line = strings.NewReplacer("(", "", ")", "").Replace(line)

		key, value, ok := splitPair(line)
		if !ok {
			continue
		}

		if strings.EqualFold(key, genderKey) {
			result.Gender = valueobjects.NormalizeGender(value)
			continue
		}

		color, matched := p.matcher.Match(value)
		if !matched {
			slog.Debug("No palette match for detected color", "clothing", key, "color", value)
			result.Unmatched = append(result.Unmatched, value)
			continue
		}

		result.Colors = append(result.Colors, entities.NewDetectedColor(key, color))
	}

	return result
}

// splitPair cuts at the first colon; both sides must be non-empty after trimming.
func splitPair(line string) (string, string, bool) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}

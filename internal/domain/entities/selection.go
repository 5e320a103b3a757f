package entities

import (
	"slices"
	"time"

	"wada-stylist/internal/domain/valueobjects"
)

// SelectionState is what the user picked after an analysis: garments to keep, the combination
// to generate with and the style. It is replaced on every new analysis.
type SelectionState struct {
	SelectedClothes     []string           `json:"selectedClothes"`
	SelectedCombination *int               `json:"selectedCombination,omitempty"`
	Style               valueobjects.Style `json:"style"`
	ActiveColorFilter   string             `json:"activeColorFilter,omitempty"`
}

func NewSelectionState() SelectionState {
	return SelectionState{
		SelectedClothes: []string{},
		Style:           valueobjects.DefaultStyle,
	}
}

func (s SelectionState) IsGarmentSelected(clothing string) bool {
	return slices.Contains(s.SelectedClothes, clothing)
}

// ToggleGarment returns a copy with clothing added or removed.
func (s SelectionState) ToggleGarment(clothing string) SelectionState {
	next := s.clone()
	if next.IsGarmentSelected(clothing) {
		next.SelectedClothes = slices.DeleteFunc(next.SelectedClothes, func(c string) bool { return c == clothing })
	} else {
		next.SelectedClothes = append(next.SelectedClothes, clothing)
	}
	return next
}

func (s SelectionState) WithCombination(index *int) SelectionState {
	next := s.clone()
	if index != nil {
		v := *index
		next.SelectedCombination = &v
	} else {
		next.SelectedCombination = nil
	}
	return next
}

func (s SelectionState) WithStyle(style valueobjects.Style) SelectionState {
	next := s.clone()
	next.Style = style
	return next
}

func (s SelectionState) WithColorFilter(name string) SelectionState {
	next := s.clone()
	next.ActiveColorFilter = name
	return next
}

// SelectedColorNames returns the palette names of the detected garments the user selected,
// without duplicates, in detection order.
func (s SelectionState) SelectedColorNames(detected []DetectedColor) []string {
	names := []string{}
	for _, d := range detected {
		if s.IsGarmentSelected(d.Clothing) && !slices.Contains(names, d.Name) {
			names = append(names, d.Name)
		}
	}
	return names
}

func (s SelectionState) clone() SelectionState {
	next := s
	next.SelectedClothes = slices.Clone(s.SelectedClothes)
	if next.SelectedClothes == nil {
		next.SelectedClothes = []string{}
	}
	if s.SelectedCombination != nil {
		v := *s.SelectedCombination
		next.SelectedCombination = &v
	}
	return next
}

// RecommendationView is the filtered recommendation list shown for the current selection.
type RecommendationView struct {
	Combinations        []Combination `json:"combinations"`
	Count               int           `json:"count"`
	SelectedCombination *Combination  `json:"selectedCombination"`
	CanGenerate         bool          `json:"canGenerate"`
}

// AnalysisSession is the per-visitor state kept between the analysis and generation calls.
type AnalysisSession struct {
	SessionID       string          `json:"sessionId"`
	Detected        []DetectedColor `json:"detected"`
	Gender          string          `json:"gender,omitempty"`
	Recommendations []Combination   `json:"recommendations"`
	Selection       SelectionState  `json:"selection"`
	ImageData       []byte          `json:"imageData,omitempty"`
	ImageMimeType   string          `json:"imageMimeType,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func NewAnalysisSession(sessionID string) *AnalysisSession {
	return &AnalysisSession{
		SessionID:       sessionID,
		Detected:        []DetectedColor{},
		Recommendations: []Combination{},
		Selection:       NewSelectionState(),
		UpdatedAt:       time.Now(),
	}
}

// Image rebuilds the last analyzed photo, or returns nil when none was stored.
func (s *AnalysisSession) Image() (*valueobjects.ImageData, error) {
	if len(s.ImageData) == 0 {
		return nil, nil
	}
	return valueobjects.NewImageData(s.ImageData, s.ImageMimeType)
}

func (s *AnalysisSession) SetImage(image *valueobjects.ImageData) {
	if image == nil {
		s.ImageData = nil
		s.ImageMimeType = ""
		return
	}
	s.ImageData = image.Data()
	s.ImageMimeType = image.MimeType()
}

func (s *AnalysisSession) Touch() {
	s.UpdatedAt = time.Now()
}

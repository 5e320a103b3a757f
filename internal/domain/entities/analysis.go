package entities

import (
	"fmt"
	"time"

	"wada-stylist/internal/domain/valueobjects"
)

// DetectedColor is a garment from the photo together with the palette color it matched.
type DetectedColor struct {
	Clothing string `json:"clothing"`
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	RGB      string `json:"rgb"`
	Index    int    `json:"index"`
}

func NewDetectedColor(clothing string, color PaletteColor) DetectedColor {
	return DetectedColor{
		Clothing: clothing,
		Name:     color.Name,
		Hex:      color.Hex,
		RGB:      color.RGB,
		Index:    color.Index,
	}
}

// AnalysisResult is the structured reading of the vision model's text.
type AnalysisResult struct {
	Colors    []DetectedColor
	Gender    string
	Unmatched []string
}

func (r AnalysisResult) IsEmpty() bool {
	return len(r.Colors) == 0
}

type AnalysisRequestID string

// 色分析リクエスト
type AnalysisRequest struct {
	id        AnalysisRequestID
	sessionID string
	image     *valueobjects.ImageData
	model     string
	createdAt time.Time
}

func NewAnalysisRequest(sessionID string, image *valueobjects.ImageData, model string) (*AnalysisRequest, error) {
	if image == nil {
		return nil, valueobjects.NewValidationFailure("Please upload an image first.")
	}

	return &AnalysisRequest{
		id:        AnalysisRequestID(fmt.Sprintf("analysis_%d", time.Now().UnixNano())),
		sessionID: sessionID,
		image:     image,
		model:     model,
		createdAt: time.Now(),
	}, nil
}

func (r *AnalysisRequest) ID() AnalysisRequestID {
	return r.id
}

func (r *AnalysisRequest) SessionID() string {
	return r.sessionID
}

func (r *AnalysisRequest) Image() *valueobjects.ImageData {
	return r.image
}

func (r *AnalysisRequest) Model() string {
	return r.model
}

func (r *AnalysisRequest) CreatedAt() time.Time {
	return r.createdAt
}

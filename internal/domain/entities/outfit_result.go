package entities

import "wada-stylist/internal/domain/valueobjects"

type OutfitResult struct {
	response  string
	imageData *valueobjects.ImageData
}

func NewOutfitResult(response string, imageData *valueobjects.ImageData) *OutfitResult {
	return &OutfitResult{
		response:  response,
		imageData: imageData,
	}
}

func (r *OutfitResult) Response() string {
	return r.response
}

func (r *OutfitResult) SetResponse(response string) {
	r.response = response
}

func (r *OutfitResult) ImageData() *valueobjects.ImageData {
	return r.imageData
}

func (r *OutfitResult) SetImageData(imageData *valueobjects.ImageData) {
	r.imageData = imageData
}

// StoredImage describes a generated image saved under a session folder.
type StoredImage struct {
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
	Size      int64  `json:"size"`
}

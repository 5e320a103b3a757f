package entities

import "wada-stylist/internal/domain/valueobjects"

// 着せ替え画像生成リクエスト
type OutfitRequest struct {
	model         string
	prompt        string
	sessionID     string
	imageData     *valueobjects.ImageData
	clothesToKeep []string
	combination   *Combination
	style         valueobjects.Style
}

func NewOutfitRequest(
	model string,
	sessionID string,
	imageData *valueobjects.ImageData,
	clothesToKeep []string,
	combination *Combination,
	style valueobjects.Style,
) *OutfitRequest {
	if model == "" {
		// デフォルトモデル
		model = "gemini-2.5-flash-image"
	}
	if !style.IsValid() {
		style = valueobjects.DefaultStyle
	}

	return &OutfitRequest{
		model:         model,
		sessionID:     sessionID,
		imageData:     imageData,
		clothesToKeep: clothesToKeep,
		combination:   combination,
		style:         style,
	}
}

func (r *OutfitRequest) Model() string {
	return r.model
}

func (r *OutfitRequest) Prompt() string {
	return r.prompt
}

func (r *OutfitRequest) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *OutfitRequest) SessionID() string {
	return r.sessionID
}

func (r *OutfitRequest) ImageData() *valueobjects.ImageData {
	return r.imageData
}

func (r *OutfitRequest) ClothesToKeep() []string {
	return r.clothesToKeep
}

func (r *OutfitRequest) Combination() *Combination {
	return r.combination
}

func (r *OutfitRequest) Style() valueobjects.Style {
	return r.style
}

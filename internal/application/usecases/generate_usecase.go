package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/services"
	"wada-stylist/internal/domain/valueobjects"
)

// GenerateUseCase renders the analyzed photo in the selected combination and keeps the result.
type GenerateUseCase struct {
	sessions      repositories.SessionRepository
	images        repositories.ImageRepository
	domainService *services.OutfitDomainService
	tracker       repositories.AnalyticsTracker
	palette       *entities.Palette
	model         string
	mock          bool
}

func NewGenerateUseCase(
	sessions repositories.SessionRepository,
	images repositories.ImageRepository,
	domainService *services.OutfitDomainService,
	tracker repositories.AnalyticsTracker,
	palette *entities.Palette,
	model string,
	mock bool,
) *GenerateUseCase {
	return &GenerateUseCase{
		sessions:      sessions,
		images:        images,
		domainService: domainService,
		tracker:       tracker,
		palette:       palette,
		model:         model,
		mock:          mock,
	}
}

// GenerateInput carries optional overrides. Nil fields fall back to the session state.
type GenerateInput struct {
	SessionID     string
	Image         *valueobjects.ImageData
	ClothesToKeep []string
	Combination   *int
	Style         *string
}

type GenerateOutput struct {
	Message   string `json:"message"`
	ImageData string `json:"imageData"`
	MimeType  string `json:"mimeType"`
	ImageURL  string `json:"imageUrl"`
	Filename  string `json:"filename"`
	SessionID string `json:"sessionId"`
}

func (uc *GenerateUseCase) Execute(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	session, err := loadSession(ctx, uc.sessions, input.SessionID)
	if err != nil {
		return nil, err
	}

	state := session.Selection
	if input.ClothesToKeep != nil {
		state.SelectedClothes = append([]string{}, input.ClothesToKeep...)
	}
	if input.Combination != nil {
		state = state.WithCombination(input.Combination)
	}
	if input.Style != nil {
		state = state.WithStyle(valueobjects.ParseStyle(*input.Style))
	}

	view, state := services.ApplySelection(state, session.Detected, session.Recommendations)
	combination := view.SelectedCombination
	// 解析前の直接指定はパレットから引く
	if combination == nil && input.Combination != nil && len(session.Recommendations) == 0 {
		if comb, ok := uc.palette.Combination(*input.Combination); ok {
			combination = &comb
		}
	}

	image := input.Image
	if image == nil {
		if image, err = session.Image(); err != nil {
			return nil, fmt.Errorf("failed to restore session image: %w", err)
		}
	}

	request := entities.NewOutfitRequest(uc.model, input.SessionID, image, state.SelectedClothes, combination, state.Style)

	result, err := uc.domainService.Generate(ctx, request)
	if err != nil {
		return nil, err
	}

	stored, err := uc.images.Save(ctx, input.SessionID, result.ImageData())
	if err != nil {
		return nil, fmt.Errorf("failed to save generated image: %w", err)
	}

	session.Selection = state
	if err := uc.sessions.Save(ctx, session); err != nil {
		slog.Warn("Failed to save session after generation", "sessionID", input.SessionID, "error", err)
	}

	uc.trackGeneration(context.WithoutCancel(ctx), input.SessionID, session.Detected, state, combination)

	message := "Image generated successfully!"
	if uc.mock {
		message += " (TESTING MODE)"
	}

	slog.Info("Outfit generated", "sessionID", input.SessionID, "combination", combination.Index, "url", stored.URL)

	return &GenerateOutput{
		Message:   message,
		ImageData: result.ImageData().ToBase64(),
		MimeType:  result.ImageData().MimeType(),
		ImageURL:  stored.URL,
		Filename:  stored.Filename,
		SessionID: input.SessionID,
	}, nil
}

// trackGeneration records the colors of the kept garments and the chosen combination.
func (uc *GenerateUseCase) trackGeneration(
	ctx context.Context,
	sessionID string,
	detected []entities.DetectedColor,
	state entities.SelectionState,
	combination *entities.Combination,
) {
	for _, d := range detected {
		if state.IsGarmentSelected(d.Clothing) {
			uc.tracker.TrackColor(ctx, entities.ColorSelection{Name: d.Name, Hex: d.Hex, Index: d.Index})
		}
	}

	uc.tracker.TrackCombination(ctx, entities.CombinationSelection{
		CombinationIndex: combination.Index,
		Colors:           combination.Names,
		UserID:           sessionID,
	})
}

package services

import (
	"context"
	"log/slog"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

const (
	msgImageRequired       = "Please upload an image first."
	msgCombinationRequired = "Please select a color combination before generating."
	msgGarmentRequired     = "Please select at least one clothing item to keep in the new outfit."
)

type OutfitDomainService struct {
	imageService repositories.OutfitImageService
}

func NewOutfitDomainService(imageService repositories.OutfitImageService) *OutfitDomainService {
	return &OutfitDomainService{
		imageService: imageService,
	}
}

func (s *OutfitDomainService) Generate(ctx context.Context, request *entities.OutfitRequest) (*entities.OutfitResult, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, err
	}

	request.SetPrompt(BuildOutfitPrompt(request.ClothesToKeep(), *request.Combination(), request.Style()))

	slog.Info("Generating outfit",
		"sessionID", request.SessionID(),
		"combination", request.Combination().Index,
		"style", request.Style(),
		"clothesToKeep", request.ClothesToKeep())

	result, err := s.imageService.GenerateOutfit(ctx, request)
	if err != nil {
		return nil, wrapExternalError("outfit generation", err)
	}

	if result == nil || result.ImageData() == nil {
		return nil, valueobjects.NewFailure(valueobjects.FailureParse, "no image data received from the image model", nil).
			WithUserMessage("Image generation incomplete. Please try again.")
	}

	return result, nil
}

// validateRequest checks image, combination and garments in that order.
func (s *OutfitDomainService) validateRequest(request *entities.OutfitRequest) error {
	if request == nil || request.ImageData() == nil {
		return valueobjects.NewValidationFailure(msgImageRequired)
	}

	if request.Combination() == nil {
		return valueobjects.NewValidationFailure(msgCombinationRequired)
	}

	if len(request.ClothesToKeep()) == 0 {
		return valueobjects.NewValidationFailure(msgGarmentRequired)
	}

	return nil
}

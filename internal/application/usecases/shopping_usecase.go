package usecases

import (
	"context"
	"fmt"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/services"
	"wada-stylist/internal/domain/valueobjects"
)

// ShoppingUseCase describes a generated outfit and turns its items into shop searches.
type ShoppingUseCase struct {
	descriptions *services.OutfitDescriptionDomainService
	model        string
}

func NewShoppingUseCase(descriptions *services.OutfitDescriptionDomainService, model string) *ShoppingUseCase {
	return &ShoppingUseCase{
		descriptions: descriptions,
		model:        model,
	}
}

type OutfitAnalysisOutput struct {
	Gender        string                 `json:"gender"`
	Items         []entities.OutfitItem  `json:"items"`
	SearchQueries []entities.SearchQuery `json:"searchQueries"`
}

func (uc *ShoppingUseCase) AnalyzeOutfit(ctx context.Context, sessionID string, image *valueobjects.ImageData) (*OutfitAnalysisOutput, error) {
	if image == nil {
		return nil, valueobjects.NewValidationFailure("Please upload an image first.")
	}

	request, err := entities.NewAnalysisRequest(sessionID, image, uc.model)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis request: %w", err)
	}

	description, err := uc.descriptions.Describe(ctx, request)
	if err != nil {
		return nil, err
	}

	return &OutfitAnalysisOutput{
		Gender:        description.Gender,
		Items:         description.Items,
		SearchQueries: services.BuildSearchQueries(description.Items),
	}, nil
}

// SearchSites builds retailer search links for each item. A nil items slice is rejected.
func (uc *ShoppingUseCase) SearchSites(items []entities.OutfitItem, gender string) ([]entities.ItemShopLinks, error) {
	if items == nil {
		return nil, valueobjects.NewValidationFailure("Items array is required")
	}

	results := make([]entities.ItemShopLinks, 0, len(items))
	for _, item := range items {
		results = append(results, entities.ItemShopLinks{
			Item:          item,
			SearchResults: services.BuildShopLinks(item, gender),
		})
	}
	return results, nil
}

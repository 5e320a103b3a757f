package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

type OutfitDescriptionDomainService struct {
	descriptionService repositories.OutfitDescriptionService
	language           string
}

func NewOutfitDescriptionDomainService(descriptionService repositories.OutfitDescriptionService, language string) *OutfitDescriptionDomainService {
	return &OutfitDescriptionDomainService{
		descriptionService: descriptionService,
		language:           language,
	}
}

func (s *OutfitDescriptionDomainService) Describe(ctx context.Context, request *entities.AnalysisRequest) (*entities.OutfitDescription, error) {
	if request == nil || request.Image() == nil {
		return nil, valueobjects.NewValidationFailure("Please upload an image first.")
	}

	text, err := s.descriptionService.DescribeOutfit(ctx, request, BuildOutfitDescriptionPrompt(s.language))
	if err != nil {
		return nil, wrapExternalError("outfit description", err)
	}

	description, err := ParseOutfitDescription(text)
	if err != nil {
		slog.Error("Error parsing outfit analysis", "error", err, "raw", text)
		return nil, err
	}

	return description, nil
}

// ParseOutfitDescription accepts the model's JSON answer, with or without Markdown fences.
func ParseOutfitDescription(text string) (*entities.OutfitDescription, error) {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return nil, describeParseFailure(fmt.Errorf("no JSON object in response"))
	}

	var description entities.OutfitDescription
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &description); err != nil {
		return nil, describeParseFailure(err)
	}
	if len(description.Items) == 0 {
		return nil, describeParseFailure(fmt.Errorf("response has no items"))
	}

	return &description, nil
}

func describeParseFailure(err error) error {
	return valueobjects.NewFailure(valueobjects.FailureParse, "failed to parse outfit analysis", err).
		WithUserMessage("Could not process the analysis results. Please try again.")
}

// SearchQueryFor joins the item's color and type.
func SearchQueryFor(item entities.OutfitItem) string {
	terms := make([]string, 0, 2)
	if item.Color != "" {
		terms = append(terms, item.Color)
	}
	if item.Type != "" {
		terms = append(terms, item.Type)
	}
	return strings.Join(terms, " ")
}

func BuildSearchQueries(items []entities.OutfitItem) []entities.SearchQuery {
	queries := make([]entities.SearchQuery, 0, len(items))
	for _, item := range items {
		queries = append(queries, entities.SearchQuery{Original: item, SearchQuery: SearchQueryFor(item)})
	}
	return queries
}

// BuildShopLinks prepares Trendyol and Zara search URLs for one item.
func BuildShopLinks(item entities.OutfitItem, gender string) []entities.ShopLink {
	query := SearchQueryFor(item)
	escaped := strings.ReplaceAll(url.QueryEscape(query), "+", "%20")

	wg, section := "2", "MAN"
	if valueobjects.IsFemaleShopper(gender) {
		wg, section = "1", "WOMAN"
	}

	return []entities.ShopLink{
		{
			Site:      "Trendyol",
			Domain:    "trendyol.com.tr",
			SearchURL: fmt.Sprintf("https://www.trendyol.com/sr?wg=%s&qt=%s&st=%s&os=1&q=%s", wg, escaped, escaped, escaped),
			Query:     query,
		},
		{
			Site:      "Zara",
			Domain:    "zara.com",
			SearchURL: fmt.Sprintf("https://www.zara.com/tr/en/search?searchTerm=%s&section=%s", escaped, section),
			Query:     query,
		},
	}
}

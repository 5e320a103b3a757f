package external

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

const incompleteGenerationMessage = "Image generation incomplete. Please try again."

type GeminiImageService struct {
	pool    repositories.GenAIClientPool
	apiKey  string
	timeout time.Duration
}

func NewGeminiImageService(pool repositories.GenAIClientPool, apiKey string, timeout time.Duration) repositories.OutfitImageService {
	return &GeminiImageService{
		pool:    pool,
		apiKey:  apiKey,
		timeout: timeout,
	}
}

func (s *GeminiImageService) GenerateOutfit(ctx context.Context, request *entities.OutfitRequest) (*entities.OutfitResult, error) {
	slog.Info("GenerateOutfit", "model", request.Model(), "sessionID", request.SessionID(), "style", request.Style())

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client, err := s.pool.GetGenAIClient(ctx, s.apiKey)
	if err != nil {
		return nil, valueobjects.NewFailure(valueobjects.FailureInternal, "gemini client unavailable", err)
	}

	image, err := upstreamImage(request.ImageData())
	if err != nil {
		return nil, err
	}
	parts := []*genai.Part{
		genai.NewPartFromText(request.Prompt()),
		{
			InlineData: &genai.Blob{
				MIMEType: image.MimeType(),
				Data:     image.Data(),
			},
		},
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	// 画像モデルは候補を1つしか返さない
	resp, err := client.Models.GenerateContent(ctx, request.Model(), contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityImage), string(genai.ModalityText)},
	})
	if err != nil {
		slog.Error("GenerateOutfit failed", "model", request.Model(), "error", err)
		return nil, ClassifyError(err)
	}

	return extractOutfitResult(resp)
}

// extractOutfitResult takes the first inline image of the first candidate.
func extractOutfitResult(resp *genai.GenerateContentResponse) (*entities.OutfitResult, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, valueobjects.NewFailure(valueobjects.FailureParse, "no candidates in response", nil).
			WithUserMessage(incompleteGenerationMessage)
	}

	result := entities.NewOutfitResult("", nil)
	for i, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		slog.Debug("Processing part", "index", i, "hasText", part.Text != "", "hasInlineData", part.InlineData != nil)

		if part.Text != "" && result.Response() == "" {
			result.SetResponse(part.Text)
		}
		if part.InlineData != nil && result.ImageData() == nil {
			imageData, err := valueobjects.NewImageData(part.InlineData.Data, part.InlineData.MIMEType)
			if err != nil {
				return nil, valueobjects.NewFailure(valueobjects.FailureParse, "generated image could not be decoded", err).
					WithUserMessage(incompleteGenerationMessage)
			}
			result.SetImageData(imageData)
		}
	}

	if result.ImageData() == nil {
		slog.Warn("No image data in response", "responseText", result.Response())
		return nil, valueobjects.NewFailure(valueobjects.FailureParse, "no image data in response", nil).
			WithUserMessage(incompleteGenerationMessage)
	}

	return result, nil
}

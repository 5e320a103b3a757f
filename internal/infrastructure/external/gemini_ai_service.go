package external

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

// GeminiAIService talks to the Gemini API for the text answers about a photo:
// the color reading and the outfit description.
type GeminiAIService struct {
	pool    repositories.GenAIClientPool
	apiKey  string
	model   string
	timeout time.Duration
}

func NewGeminiAIService(pool repositories.GenAIClientPool, apiKey, model string, timeout time.Duration) *GeminiAIService {
	return &GeminiAIService{
		pool:    pool,
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

var (
	_ repositories.ColorAnalysisService     = (*GeminiAIService)(nil)
	_ repositories.OutfitDescriptionService = (*GeminiAIService)(nil)
)

func (s *GeminiAIService) AnalyzeColors(ctx context.Context, request *entities.AnalysisRequest, prompt string) (string, error) {
	return s.generateText(ctx, "AnalyzeColors", request, prompt)
}

func (s *GeminiAIService) DescribeOutfit(ctx context.Context, request *entities.AnalysisRequest, prompt string) (string, error) {
	return s.generateText(ctx, "DescribeOutfit", request, prompt)
}

func (s *GeminiAIService) Close() error {
	return nil
}

func (s *GeminiAIService) generateText(ctx context.Context, op string, request *entities.AnalysisRequest, prompt string) (string, error) {
	model := request.Model()
	if model == "" {
		model = s.model
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client, err := s.pool.GetGenAIClient(ctx, s.apiKey)
	if err != nil {
		return "", valueobjects.NewFailure(valueobjects.FailureInternal, "gemini client unavailable", err)
	}

	image, err := upstreamImage(request.Image())
	if err != nil {
		return "", err
	}
	slog.Info(op, "model", model, "requestID", request.ID(), "mimeType", image.MimeType(), "size", image.Size())

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
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

	resp, err := client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		slog.Error(op+" failed", "model", model, "error", err)
		return "", ClassifyError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", valueobjects.NewFailure(valueobjects.FailureParse, "empty response from "+model, nil)
	}

	slog.Debug(op, "response", text)
	return text, nil
}

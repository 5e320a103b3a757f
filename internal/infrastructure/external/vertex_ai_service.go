package external

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/vertexai/genai"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

// VertexAIService reads garment colors through Vertex AI instead of the Gemini API key.
type VertexAIService struct {
	pool    repositories.VertexAIClientPool
	model   string
	timeout time.Duration
}

func NewVertexAIService(pool repositories.VertexAIClientPool, model string, timeout time.Duration) repositories.ColorAnalysisService {
	return &VertexAIService{
		pool:    pool,
		model:   model,
		timeout: timeout,
	}
}

func (s *VertexAIService) AnalyzeColors(ctx context.Context, request *entities.AnalysisRequest, prompt string) (string, error) {
	modelName := request.Model()
	if modelName == "" {
		modelName = s.model
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client, err := s.pool.GetVertexAIClient(ctx)
	if err != nil {
		return "", valueobjects.NewFailure(valueobjects.FailureInternal, "vertex client unavailable", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)

	image, err := upstreamImage(request.Image())
	if err != nil {
		return "", err
	}
	slog.Info("AnalyzeColors", "backend", "vertex", "model", modelName, "requestID", request.ID())

	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData(string(image.Format()), image.Data()),
	)
	if err != nil {
		slog.Error("AnalyzeColors failed", "backend", "vertex", "error", err)
		return "", ClassifyError(err)
	}

	text := strings.TrimSpace(vertexResponseText(resp))
	if text == "" {
		return "", valueobjects.NewFailure(valueobjects.FailureParse, "empty response from "+modelName, nil)
	}
	return text, nil
}

// クライアントはプール側で閉じる
func (s *VertexAIService) Close() error {
	return nil
}

func vertexResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

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

const noColorsMessage = "No clothing colors could be detected in this image. Please try another photo."

type AnalyzeUseCase struct {
	sessions      repositories.SessionRepository
	domainService *services.ColorAnalysisDomainService
	tracker       repositories.AnalyticsTracker
	model         string
}

func NewAnalyzeUseCase(
	sessions repositories.SessionRepository,
	domainService *services.ColorAnalysisDomainService,
	tracker repositories.AnalyticsTracker,
	model string,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		sessions:      sessions,
		domainService: domainService,
		tracker:       tracker,
		model:         model,
	}
}

type AnalyzeInput struct {
	SessionID string
	Image     *valueobjects.ImageData
}

type AnalyzeOutput struct {
	SessionID       string                      `json:"sessionId"`
	DetectedColors  []entities.DetectedColor    `json:"detectedColors"`
	Gender          string                      `json:"gender,omitempty"`
	Unmatched       []string                    `json:"unmatched,omitempty"`
	Recommendations []entities.Combination      `json:"recommendations"`
	Selection       entities.SelectionState     `json:"selection"`
	View            entities.RecommendationView `json:"view"`
	Message         string                      `json:"message,omitempty"`
}

func (uc *AnalyzeUseCase) Execute(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error) {
	if input.Image == nil {
		return nil, valueobjects.NewValidationFailure("Please upload an image first.")
	}

	request, err := entities.NewAnalysisRequest(input.SessionID, input.Image, uc.model)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis request: %w", err)
	}

	analysis, err := uc.domainService.Analyze(ctx, request)
	if err != nil {
		return nil, err
	}

	session, err := loadSession(ctx, uc.sessions, input.SessionID)
	if err != nil {
		return nil, err
	}

	// 新しい画像では選択をやり直す
	session.Detected = analysis.Result.Colors
	session.Gender = analysis.Result.Gender
	session.Recommendations = analysis.Recommendations
	session.Selection = entities.NewSelectionState()
	session.SetImage(input.Image)

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if analysis.Result.Gender != "" {
		uc.tracker.TrackGender(context.WithoutCancel(ctx), analysis.Result.Gender)
	}

	view, state := services.ApplySelection(session.Selection, session.Detected, session.Recommendations)

	output := &AnalyzeOutput{
		SessionID:       input.SessionID,
		DetectedColors:  session.Detected,
		Gender:          session.Gender,
		Unmatched:       analysis.Result.Unmatched,
		Recommendations: session.Recommendations,
		Selection:       state,
		View:            view,
	}
	if analysis.Result.IsEmpty() {
		output.Message = noColorsMessage
	}

	slog.Info("Image analyzed", "sessionID", input.SessionID, "colors", len(output.DetectedColors), "recommendations", len(output.Recommendations))
	return output, nil
}

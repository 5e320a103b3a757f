package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

// ColorAnalysis is the outcome of one photo analysis.
type ColorAnalysis struct {
	Result          entities.AnalysisResult
	Recommendations []entities.Combination
	RawText         string
}

type ColorAnalysisDomainService struct {
	aiService repositories.ColorAnalysisService
	palette   *entities.Palette
	parser    *ResponseParser
	finder    *CombinationFinder
}

func NewColorAnalysisDomainService(aiService repositories.ColorAnalysisService, palette *entities.Palette) *ColorAnalysisDomainService {
	return &ColorAnalysisDomainService{
		aiService: aiService,
		palette:   palette,
		parser:    NewResponseParser(NewColorMatcher(palette)),
		finder:    NewCombinationFinder(palette),
	}
}

func (s *ColorAnalysisDomainService) Analyze(ctx context.Context, request *entities.AnalysisRequest) (*ColorAnalysis, error) {
	if request == nil || request.Image() == nil {
		return nil, valueobjects.NewValidationFailure("Please upload an image first.")
	}

	text, err := s.aiService.AnalyzeColors(ctx, request, BuildColorAnalysisPrompt(s.palette.Names()))
	if err != nil {
		// モデル応答の形式不正は空の結果として扱う
		if valueobjects.CategoryOf(err) == valueobjects.FailureParse {
			slog.Warn("Vision response could not be read", "requestID", request.ID(), "error", err)
			return &ColorAnalysis{Result: entities.AnalysisResult{Colors: []entities.DetectedColor{}}, Recommendations: []entities.Combination{}}, nil
		}
		return nil, wrapExternalError("color analysis", err)
	}

	slog.Info("Color analysis response", "requestID", request.ID(), "text", text)

	result := s.parser.Parse(text)
	return &ColorAnalysis{
		Result:          result,
		Recommendations: s.finder.Find(result.Colors),
		RawText:         text,
	}, nil
}

// wrapExternalError keeps an existing failure category and turns quota errors into service-unavailable.
func wrapExternalError(operation string, err error) error {
	if _, ok := valueobjects.AsFailure(err); ok {
		return fmt.Errorf("%s failed: %w", operation, err)
	}
	if isQuotaError(err) {
		return valueobjects.NewFailure(valueobjects.FailureServiceUnavailable, "service temporarily unavailable due to high demand", err)
	}
	return valueobjects.NewFailure(valueobjects.FailureInternal, operation+" failed", err)
}

func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "resourceexhausted")
}

package repositories

import (
	"context"

	"wada-stylist/internal/domain/entities"
)

// 画像から服の色を読み取るビジョンサービス
type ColorAnalysisService interface {
	// AnalyzeColors sends the prompt and image and returns the model's raw text.
	AnalyzeColors(ctx context.Context, request *entities.AnalysisRequest, prompt string) (string, error)

	Close() error
}

// 着せ替え画像生成サービス
type OutfitImageService interface {
	GenerateOutfit(ctx context.Context, request *entities.OutfitRequest) (*entities.OutfitResult, error)
}

// 生成されたコーディネートの説明サービス
type OutfitDescriptionService interface {
	DescribeOutfit(ctx context.Context, request *entities.AnalysisRequest, prompt string) (string, error)
}

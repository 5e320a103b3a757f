package external

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

// MockImageService answers every generation with a fixed image from disk.
type MockImageService struct {
	imagePath string
	delay     time.Duration
}

func NewMockImageService(imagePath string, delay time.Duration) repositories.OutfitImageService {
	return &MockImageService{
		imagePath: imagePath,
		delay:     delay,
	}
}

func (s *MockImageService) GenerateOutfit(ctx context.Context, request *entities.OutfitRequest) (*entities.OutfitResult, error) {
	slog.Info("Using mock image", "path", s.imagePath, "sessionID", request.SessionID())

	select {
	case <-ctx.Done():
		return nil, ClassifyError(ctx.Err())
	case <-time.After(s.delay):
	}

	data, err := os.ReadFile(s.imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock image: %w", err)
	}

	image, err := valueobjects.NewImageData(data, "image/png")
	if err != nil {
		return nil, fmt.Errorf("mock image %s is not usable: %w", s.imagePath, err)
	}

	return entities.NewOutfitResult("mock", image), nil
}

package repositories

import (
	"context"
	"errors"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/valueobjects"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps the analysis and selection state of each visitor.
type SessionRepository interface {
	Save(ctx context.Context, session *entities.AnalysisSession) error
	FindByID(ctx context.Context, sessionID string) (*entities.AnalysisSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// ImageRepository persists generated images per session.
type ImageRepository interface {
	Save(ctx context.Context, sessionID string, image *valueobjects.ImageData) (*entities.StoredImage, error)
	List(ctx context.Context, sessionID string) ([]entities.StoredImage, error)
	Delete(ctx context.Context, sessionID, filename string) error
	Cleanup(ctx context.Context, sessionID string) error
	// FolderPath is the public URL prefix of the session folder.
	FolderPath(sessionID string) string
}

package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
)

// GalleryUseCase manages the images generated during a session.
type GalleryUseCase struct {
	images   repositories.ImageRepository
	sessions repositories.SessionRepository
}

func NewGalleryUseCase(images repositories.ImageRepository, sessions repositories.SessionRepository) *GalleryUseCase {
	return &GalleryUseCase{
		images:   images,
		sessions: sessions,
	}
}

type GalleryOutput struct {
	SessionID string                 `json:"sessionId"`
	Images    []entities.StoredImage `json:"images"`
	Count     int                    `json:"count"`
}

type SessionInfoOutput struct {
	SessionID  string                 `json:"sessionId"`
	ImageCount int                    `json:"imageCount"`
	Images     []string               `json:"images"`
	FolderPath string                 `json:"folderPath"`
	Details    []entities.StoredImage `json:"details"`
}

func (uc *GalleryUseCase) List(ctx context.Context, sessionID string) (*GalleryOutput, error) {
	images, err := uc.images.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &GalleryOutput{
		SessionID: sessionID,
		Images:    images,
		Count:     len(images),
	}, nil
}

func (uc *GalleryUseCase) Info(ctx context.Context, sessionID string) (*SessionInfoOutput, error) {
	images, err := uc.images.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(images))
	for _, img := range images {
		names = append(names, img.Filename)
	}

	return &SessionInfoOutput{
		SessionID:  sessionID,
		ImageCount: len(images),
		Images:     names,
		FolderPath: uc.images.FolderPath(sessionID),
		Details:    images,
	}, nil
}

func (uc *GalleryUseCase) Delete(ctx context.Context, sessionID, filename string) error {
	return uc.images.Delete(ctx, sessionID, filename)
}

// Cleanup removes the session's images and forgets its analysis.
func (uc *GalleryUseCase) Cleanup(ctx context.Context, sessionID string) error {
	if err := uc.images.Cleanup(ctx, sessionID); err != nil {
		return err
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	slog.Info("Session cleaned up", "sessionID", sessionID)
	return nil
}

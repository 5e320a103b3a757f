package usecases

import (
	"context"
	"errors"
	"fmt"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
)

// loadSession returns the stored session or a fresh one for a first-time visitor.
func loadSession(ctx context.Context, sessions repositories.SessionRepository, sessionID string) (*entities.AnalysisSession, error) {
	session, err := sessions.FindByID(ctx, sessionID)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return entities.NewAnalysisSession(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

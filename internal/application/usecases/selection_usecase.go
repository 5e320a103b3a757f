package usecases

import (
	"context"
	"fmt"
	"slices"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/services"
	"wada-stylist/internal/domain/valueobjects"
)

// SelectionUseCase edits the per-session selection and recomputes the recommendations.
type SelectionUseCase struct {
	sessions repositories.SessionRepository
}

func NewSelectionUseCase(sessions repositories.SessionRepository) *SelectionUseCase {
	return &SelectionUseCase{sessions: sessions}
}

type SelectionOutput struct {
	SessionID      string                      `json:"sessionId"`
	DetectedColors []entities.DetectedColor    `json:"detectedColors"`
	Gender         string                      `json:"gender,omitempty"`
	Selection      entities.SelectionState     `json:"selection"`
	View           entities.RecommendationView `json:"view"`
}

func (uc *SelectionUseCase) View(ctx context.Context, sessionID string) (*SelectionOutput, error) {
	session, err := loadSession(ctx, uc.sessions, sessionID)
	if err != nil {
		return nil, err
	}
	view, state := services.ApplySelection(session.Selection, session.Detected, session.Recommendations)
	return newSelectionOutput(session, state, view), nil
}

func (uc *SelectionUseCase) ToggleGarment(ctx context.Context, sessionID, clothing string) (*SelectionOutput, error) {
	return uc.update(ctx, sessionID, func(session *entities.AnalysisSession) (entities.SelectionState, error) {
		known := slices.ContainsFunc(session.Detected, func(d entities.DetectedColor) bool { return d.Clothing == clothing })
		if !known {
			return session.Selection, valueobjects.NewValidationFailure(fmt.Sprintf("Unknown clothing item: %s", clothing))
		}
		return session.Selection.ToggleGarment(clothing), nil
	})
}

// SelectCombination selects index, or clears the selection when index is nil.
// Only combinations in the current filtered list can be selected.
func (uc *SelectionUseCase) SelectCombination(ctx context.Context, sessionID string, index *int) (*SelectionOutput, error) {
	return uc.update(ctx, sessionID, func(session *entities.AnalysisSession) (entities.SelectionState, error) {
		if index == nil {
			return session.Selection.WithCombination(nil), nil
		}
		view, _ := services.ApplySelection(session.Selection, session.Detected, session.Recommendations)
		for _, comb := range view.Combinations {
			if comb.Index == *index {
				return session.Selection.WithCombination(index), nil
			}
		}
		return session.Selection, valueobjects.NewValidationFailure(fmt.Sprintf("Combination %d is not available for the current selection.", *index))
	})
}

func (uc *SelectionUseCase) SetStyle(ctx context.Context, sessionID, style string) (*SelectionOutput, error) {
	return uc.update(ctx, sessionID, func(session *entities.AnalysisSession) (entities.SelectionState, error) {
		return session.Selection.WithStyle(valueobjects.ParseStyle(style)), nil
	})
}

// SetColorFilter sets the single-color filter. An empty name clears it.
func (uc *SelectionUseCase) SetColorFilter(ctx context.Context, sessionID, color string) (*SelectionOutput, error) {
	return uc.update(ctx, sessionID, func(session *entities.AnalysisSession) (entities.SelectionState, error) {
		return session.Selection.WithColorFilter(color), nil
	})
}

func (uc *SelectionUseCase) ClearSelection(ctx context.Context, sessionID string) (*SelectionOutput, error) {
	return uc.update(ctx, sessionID, func(session *entities.AnalysisSession) (entities.SelectionState, error) {
		return entities.NewSelectionState().WithStyle(session.Selection.Style), nil
	})
}

func (uc *SelectionUseCase) update(
	ctx context.Context,
	sessionID string,
	change func(*entities.AnalysisSession) (entities.SelectionState, error),
) (*SelectionOutput, error) {
	session, err := loadSession(ctx, uc.sessions, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := change(session)
	if err != nil {
		return nil, err
	}

	view, state := services.ApplySelection(next, session.Detected, session.Recommendations)
	session.Selection = state

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return newSelectionOutput(session, state, view), nil
}

func newSelectionOutput(session *entities.AnalysisSession, state entities.SelectionState, view entities.RecommendationView) *SelectionOutput {
	return &SelectionOutput{
		SessionID:      session.SessionID,
		DetectedColors: session.Detected,
		Gender:         session.Gender,
		Selection:      state,
		View:           view,
	}
}

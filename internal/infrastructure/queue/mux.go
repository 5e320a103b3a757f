package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
)

// NewAnalyticsMux routes analytics tasks to the repository writes.
func NewAnalyticsMux(repo repositories.AnalyticsRepository) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskVisit, newVisitHandler(repo))
	mux.HandleFunc(TaskColor, newColorHandler(repo))
	mux.HandleFunc(TaskCombination, newCombinationHandler(repo))
	mux.HandleFunc(TaskGender, newGenderHandler(repo))
	return mux
}

func newVisitHandler(repo repositories.AnalyticsRepository) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var visit entities.Visit
		if err := decode(t, &visit); err != nil {
			return err
		}
		return repo.RecordVisit(ctx, visit)
	}
}

func newColorHandler(repo repositories.AnalyticsRepository) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var color entities.ColorSelection
		if err := decode(t, &color); err != nil {
			return err
		}
		if color.Name == "" {
			return fmt.Errorf("color task without name: %w", asynq.SkipRetry)
		}
		return repo.IncrementColor(ctx, color)
	}
}

func newCombinationHandler(repo repositories.AnalyticsRepository) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var selection entities.CombinationSelection
		if err := decode(t, &selection); err != nil {
			return err
		}
		return repo.RecordCombination(ctx, selection)
	}
}

func newGenderHandler(repo repositories.AnalyticsRepository) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload GenderPayload
		if err := decode(t, &payload); err != nil {
			return err
		}
		if payload.Gender == "" {
			return fmt.Errorf("gender task without gender: %w", asynq.SkipRetry)
		}
		return repo.IncrementGender(ctx, payload.Gender)
	}
}

// 壊れたペイロードは再試行しない
func decode(t *asynq.Task, v any) error {
	if err := json.Unmarshal(t.Payload(), v); err != nil {
		return fmt.Errorf("invalid %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	return nil
}

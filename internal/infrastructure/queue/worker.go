package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"wada-stylist/internal/domain/repositories"
)

// StartWorker processes the analytics queue in the background and returns its stop function.
func StartWorker(opt asynq.RedisClientOpt, repo repositories.AnalyticsRepository, concurrency int) (func(), error) {
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{AnalyticsQueue: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			slog.Error("Analytics task failed", "type", task.Type(), "error", err)
		}),
	})

	if err := srv.Start(NewAnalyticsMux(repo)); err != nil {
		return nil, fmt.Errorf("failed to start analytics worker: %w", err)
	}

	return srv.Shutdown, nil
}

package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
)

const inlineTaskTimeout = 10 * time.Second

// InlineTracker runs analytics tasks on in-process workers. Used when Redis is not configured.
// Events are dropped, with a warning, when the buffer is full.
type InlineTracker struct {
	handler asynq.Handler
	buffer  *taskBuffer
}

func NewInlineTracker(repo repositories.AnalyticsRepository, workers, buffer int) *InlineTracker {
	return newInlineTracker(NewAnalyticsMux(repo), workers, buffer)
}

func newInlineTracker(handler asynq.Handler, workers, buffer int) *InlineTracker {
	t := &InlineTracker{handler: handler}
	t.buffer = newTaskBuffer(buffer, workers, t.process)
	return t
}

var _ repositories.AnalyticsTracker = (*InlineTracker)(nil)

func (t *InlineTracker) TrackVisit(ctx context.Context, visit entities.Visit) {
	t.buffer.submit(NewVisitTask(visit))
}

func (t *InlineTracker) TrackColor(ctx context.Context, color entities.ColorSelection) {
	t.buffer.submit(NewColorTask(color))
}

func (t *InlineTracker) TrackCombination(ctx context.Context, selection entities.CombinationSelection) {
	t.buffer.submit(NewCombinationTask(selection))
}

func (t *InlineTracker) TrackGender(ctx context.Context, gender string) {
	t.buffer.submit(NewGenderTask(gender))
}

// Close stops accepting events and waits for the queued ones until ctx is done.
func (t *InlineTracker) Close(ctx context.Context) error {
	return t.buffer.close(ctx)
}

func (t *InlineTracker) process(task *asynq.Task) {
	ctx, cancel := context.WithTimeout(context.Background(), inlineTaskTimeout)
	defer cancel()

	if err := t.handler.ProcessTask(ctx, task); err != nil {
		slog.Error("Analytics task failed", "type", task.Type(), "error", err)
	}
}

package queue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/repositories"
)

const enqueueTimeout = 5 * time.Second

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// AsynqTracker hands analytics writes to Redis so they survive a restart and are retried.
// Track calls only buffer the task; a background goroutine talks to Redis.
type AsynqTracker struct {
	client enqueuer
	buffer *taskBuffer
}

func NewAsynqTracker(opt asynq.RedisClientOpt, buffer int) *AsynqTracker {
	return newAsynqTracker(asynq.NewClient(opt), buffer)
}

func newAsynqTracker(client enqueuer, buffer int) *AsynqTracker {
	t := &AsynqTracker{client: client}
	t.buffer = newTaskBuffer(buffer, 1, t.enqueue)
	return t
}

var _ repositories.AnalyticsTracker = (*AsynqTracker)(nil)

func (t *AsynqTracker) TrackVisit(ctx context.Context, visit entities.Visit) {
	t.buffer.submit(NewVisitTask(visit))
}

func (t *AsynqTracker) TrackColor(ctx context.Context, color entities.ColorSelection) {
	t.buffer.submit(NewColorTask(color))
}

func (t *AsynqTracker) TrackCombination(ctx context.Context, selection entities.CombinationSelection) {
	t.buffer.submit(NewCombinationTask(selection))
}

func (t *AsynqTracker) TrackGender(ctx context.Context, gender string) {
	t.buffer.submit(NewGenderTask(gender))
}

// Close flushes buffered tasks until ctx is done, then closes the Redis client.
func (t *AsynqTracker) Close(ctx context.Context) error {
	return errors.Join(t.buffer.close(ctx), t.client.Close())
}

func (t *AsynqTracker) enqueue(task *asynq.Task) {
	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()

	if _, err := t.client.EnqueueContext(ctx, task, asynq.Queue(AnalyticsQueue), asynq.MaxRetry(5)); err != nil {
		slog.Error("Failed to enqueue analytics task", "type", task.Type(), "error", err)
	}
}

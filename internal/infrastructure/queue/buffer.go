package queue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hibiken/asynq"
)

// taskBuffer is a bounded queue drained by background goroutines. submit never blocks the caller;
// a full buffer drops the task with a warning.
type taskBuffer struct {
	tasks chan *asynq.Task
	run   func(*asynq.Task)
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func newTaskBuffer(size, workers int, run func(*asynq.Task)) *taskBuffer {
	if workers < 1 {
		workers = 1
	}
	b := &taskBuffer{
		tasks: make(chan *asynq.Task, size),
		run:   run,
	}

	for i := 0; i < workers; i++ {
		b.wg.Add(1)
		go b.drain()
	}
	return b
}

func (b *taskBuffer) submit(task *asynq.Task, err error) {
	if err != nil {
		slog.Error("Failed to build analytics task", "error", err)
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		slog.Warn("Analytics tracker closed, event dropped", "type", task.Type())
		return
	}

	select {
	case b.tasks <- task:
	default:
		slog.Warn("Analytics buffer full, event dropped", "type", task.Type())
	}
}

// close stops accepting tasks and waits for the queued ones until ctx is done.
func (b *taskBuffer) close(ctx context.Context) error {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.tasks)
	}
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *taskBuffer) drain() {
	defer b.wg.Done()

	for task := range b.tasks {
		b.run(task)
	}
}

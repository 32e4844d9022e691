package async

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/async"
)

type countingExecutor struct {
	mu   sync.Mutex
	seen []uuid.UUID
}

func (e *countingExecutor) Execute(_ context.Context, job async.Job) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seen = append(e.seen, job.ID)
	return nil
}

func (e *countingExecutor) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.seen)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJobQueueProcessesAllJobs(t *testing.T) {
	exec := &countingExecutor{}
	q := NewJobQueue(exec, discardLogger(), WithWorkers(2), WithQueueSize(32))

	for i := 0; i < 20; i++ {
		require.NoError(t, q.Enqueue(context.Background(), async.Job{
			ID:        uuid.New(),
			Type:      constants.JobTypeInference,
			DatasetID: uuid.New(),
		}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 20, exec.count())
}

func TestJobQueueEnqueueAfterShutdown(t *testing.T) {
	exec := &countingExecutor{}
	q := NewJobQueue(exec, discardLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// Refused, not panicking on a closed channel.
	require.ErrorIs(t, q.Enqueue(context.Background(), async.Job{ID: uuid.New()}), ErrShuttingDown)
	assert.Zero(t, exec.count())
}

// blockingExecutor holds every job until release is closed.
type blockingExecutor struct {
	started chan struct{}
	release chan struct{}
}

func (e *blockingExecutor) Execute(_ context.Context, _ async.Job) error {
	e.started <- struct{}{}
	<-e.release
	return nil
}

func TestJobQueueBackpressureHonorsContext(t *testing.T) {
	exec := &blockingExecutor{
		started: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
	q := NewJobQueue(exec, discardLogger(), WithWorkers(1), WithQueueSize(1))

	// First job occupies the worker, second fills the buffer.
	require.NoError(t, q.Enqueue(context.Background(), async.Job{ID: uuid.New()}))
	<-exec.started
	require.NoError(t, q.Enqueue(context.Background(), async.Job{ID: uuid.New()}))

	// A full queue must respect the caller's deadline instead of
	// stalling every other producer.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, async.Job{ID: uuid.New()})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(exec.release)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	q.Shutdown(shutdownCtx)
}

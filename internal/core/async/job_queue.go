// Package async runs processing jobs on a bounded in-process worker pool.
package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/data-alchemy/backend/internal/async"
)

// ErrShuttingDown is returned by Enqueue once Shutdown has begun.
var ErrShuttingDown = errors.New("job queue is shutting down")

// Executor runs one job to completion, including its status bookkeeping.
type Executor interface {
	Execute(ctx context.Context, job async.Job) error
}

type JobQueue struct {
	exec    Executor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	// ch is never closed; done signals shutdown so a blocked Enqueue
	// cannot race a close and panic.
	ch   chan async.Job
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*JobQueue)

func WithWorkers(n int) Option {
	return func(q *JobQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *JobQueue) {
		if n > 0 {
			q.ch = make(chan async.Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *JobQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewJobQueue(exec Executor, logger *slog.Logger, opts ...Option) *JobQueue {
	q := &JobQueue{
		exec:    exec,
		logger:  logger,
		workers: 4,
		timeout: time.Hour,
		ch:      make(chan async.Job, 256),
		done:    make(chan struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *JobQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for {
					select {
					case <-q.done:
						q.drain(workerID)
						q.logger.Info("worker stopped", "worker_id", workerID)
						return
					case job := <-q.ch:
						q.process(workerID, job)
					}
				}
			}(i + 1)
		}
	})
}

// drain empties whatever is still buffered at shutdown before the worker
// exits, so accepted jobs are not silently lost.
func (q *JobQueue) drain(workerID int) {
	for {
		select {
		case job := <-q.ch:
			q.process(workerID, job)
		default:
			return
		}
	}
}

func (q *JobQueue) process(workerID int, job async.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	err := q.exec.Execute(ctx, job)
	cancel()

	if err != nil {
		q.logger.Error("job failed", "worker_id", workerID, "job_id", job.ID, "job_type", job.Type, "error", err)
	} else {
		q.logger.Info("job completed", "worker_id", workerID, "job_id", job.ID, "job_type", job.Type)
	}
}

// Enqueue hands a job to the pool. A full queue blocks until a worker
// frees a slot, the context expires, or shutdown begins; the mutex is
// held only for the closed check so backpressure never stalls Shutdown
// or other producers.
func (q *JobQueue) Enqueue(ctx context.Context, job async.Job) error {
	q.mu.Lock()
	closed := q.closed
	q.mu.Unlock()
	if closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.ID)
		return ErrShuttingDown
	}

	select {
	case q.ch <- job:
		q.logger.Info("queued job", "job_id", job.ID, "job_type", job.Type, "dataset_id", job.DatasetID)
		return nil
	default:
	}

	q.logger.Warn("queue full, applying backpressure", "job_id", job.ID)
	select {
	case q.ch <- job:
		q.logger.Info("queued job", "job_id", job.ID, "job_type", job.Type, "dataset_id", job.DatasetID)
		return nil
	case <-q.done:
		return ErrShuttingDown
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *JobQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.done)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/joseph-ayodele/outfit-advisor/internal/repository"
)

// RecordQueue persists weather readings off the request path.
type RecordQueue struct {
	repo    repository.WeatherRepository
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*RecordQueue)

func WithWorkers(n int) Option {
	return func(q *RecordQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *RecordQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *RecordQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewRecordQueue(repo repository.WeatherRepository, logger *slog.Logger, opts ...Option) *RecordQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &RecordQueue{
		repo:    repo,
		logger:  logger,
		workers: 2,
		timeout: 5 * time.Second,
		ch:      make(chan Job, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *RecordQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Debug("record worker started", "worker_id", workerID)

				for job := range q.ch {
					q.process(workerID, job)
				}

				q.logger.Debug("record worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *RecordQueue) process(workerID int, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	rec := job.Record
	if err := q.repo.Upsert(ctx, &rec); err != nil {
		q.logger.Error("weather.persist.failed",
			"worker_id", workerID, "req_id", job.RequestID,
			"date", rec.Date, "location", rec.Location, "error", err)
		return
	}
	q.logger.Info("weather.persist.ok",
		"worker_id", workerID, "req_id", job.RequestID,
		"date", rec.Date, "location", rec.Location,
		"latency_ms", time.Since(job.SubmittedAt).Milliseconds())
}

// Enqueue hands job to a worker. When the buffer is full it blocks until
// a slot frees up or ctx is done.
func (q *RecordQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "location", job.Record.Location)
		return ErrClosed
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case q.ch <- job:
		return nil
	default:
	}

	q.logger.Warn("queue full, applying backpressure", "location", job.Record.Location)
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting jobs and waits for queued ones to drain.
func (q *RecordQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
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

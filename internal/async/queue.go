package async

import (
	"context"
	"errors"
	"time"

	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

// ErrClosed is returned by Enqueue once Shutdown has started.
var ErrClosed = errors.New("queue is shutting down")

// Job asks a worker to persist one weather reading.
type Job struct {
	Record      entity.WeatherRecord
	SubmittedAt time.Time
	RequestID   string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

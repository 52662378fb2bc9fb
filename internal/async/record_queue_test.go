package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

type fakeWeatherRepo struct {
	mu    sync.Mutex
	saved []entity.WeatherRecord
	err   error
	block chan struct{}
}

func (f *fakeWeatherRepo) Upsert(_ context.Context, rec *entity.WeatherRecord) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, *rec)
	return nil
}

func (f *fakeWeatherRepo) ListByLocation(context.Context, string, int) ([]entity.WeatherRecord, error) {
	return nil, nil
}

func (f *fakeWeatherRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func job(location string) Job {
	return Job{Record: entity.WeatherRecord{Date: "2024-03-01", Location: location}}
}

func TestRecordQueueDrainsOnShutdown(t *testing.T) {
	repo := &fakeWeatherRepo{}
	q := NewRecordQueue(repo, quietLogger(), WithWorkers(3), WithQueueSize(16))

	for _, loc := range []string{"北京", "上海", "广州", "深圳", "杭州"} {
		require.NoError(t, q.Enqueue(context.Background(), job(loc)))
	}
	q.Shutdown(context.Background())

	assert.Equal(t, 5, repo.count())
}

func TestRecordQueueRejectsAfterShutdown(t *testing.T) {
	q := NewRecordQueue(&fakeWeatherRepo{}, quietLogger())
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), job("北京"))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestRecordQueueBackpressureHonorsContext(t *testing.T) {
	repo := &fakeWeatherRepo{block: make(chan struct{})}
	q := NewRecordQueue(repo, quietLogger(), WithWorkers(1), WithQueueSize(1))

	// one job held by the worker, one filling the buffer
	require.NoError(t, q.Enqueue(context.Background(), job("a")))
	require.Eventually(t, func() bool { return len(q.ch) == 0 }, time.Second, 5*time.Millisecond)
	require.NoError(t, q.Enqueue(context.Background(), job("b")))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, job("c"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(repo.block)
	q.Shutdown(context.Background())
	assert.Equal(t, 2, repo.count())
}

func TestRecordQueueLogsFailures(t *testing.T) {
	repo := &fakeWeatherRepo{err: errors.New("db down")}
	q := NewRecordQueue(repo, quietLogger(), WithProcessTimeout(time.Second))

	require.NoError(t, q.Enqueue(context.Background(), job("北京")))
	q.Shutdown(context.Background())
	assert.Zero(t, repo.count())
}

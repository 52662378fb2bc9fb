package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

// ErrUnavailable wraps the last provider error once every provider failed.
var ErrUnavailable = errors.New("获取天气数据失败")

type Options struct {
	Timeout       time.Duration // per provider attempt
	RatePerSecond float64
	Burst         int
}

// Service tries its providers in order and returns the first reading.
type Service struct {
	providers []Provider
	limiter   *rate.Limiter
	timeout   time.Duration
	logger    *slog.Logger
}

func NewService(providers []Provider, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Service{
		providers: providers,
		limiter:   rate.NewLimiter(limit, burst),
		timeout:   opts.Timeout,
		logger:    logger,
	}
}

func (s *Service) Fetch(ctx context.Context, location string) (entity.WeatherReading, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return entity.WeatherReading{}, fmt.Errorf("weather rate limit: %w", err)
	}

	lastErr := errors.New("no weather provider configured")
	for _, p := range s.providers {
		reading, err := s.attempt(ctx, p, location)
		if err == nil {
			s.logger.Info("weather.fetch.ok", "provider", p.Name(), "location", location)
			return reading, nil
		}
		if errors.Is(err, ErrSkipped) {
			s.logger.Debug("weather.fetch.skipped", "provider", p.Name())
			continue
		}
		if ctx.Err() != nil {
			return entity.WeatherReading{}, fmt.Errorf("%w: %w", ErrUnavailable, ctx.Err())
		}
		s.logger.Warn("weather.fetch.fallback", "provider", p.Name(), "location", location, "error", err)
		lastErr = err
	}

	s.logger.Error("weather.fetch.failed", "location", location, "error", lastErr)
	return entity.WeatherReading{}, fmt.Errorf("%w: %w", ErrUnavailable, lastErr)
}

func (s *Service) attempt(ctx context.Context, p Provider, location string) (entity.WeatherReading, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return p.Fetch(ctx, location)
}

package outfit

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/async"
	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
	"github.com/joseph-ayodele/outfit-advisor/internal/llm"
	"github.com/joseph-ayodele/outfit-advisor/internal/metrics"
	"github.com/joseph-ayodele/outfit-advisor/internal/repository"
	"github.com/joseph-ayodele/outfit-advisor/internal/scheme"
)

const (
	msgLocationRequired = "请提供位置信息"
	msgClothesRequired  = "请提供衣物信息"

	maxRecordLimit = 365
)

// WeatherFetcher returns the current reading for a location.
type WeatherFetcher interface {
	Fetch(ctx context.Context, location string) (entity.WeatherReading, error)
}

// Service turns weather readings and user garments into outfit advice.
type Service struct {
	weather   WeatherFetcher
	chat      llm.ChatClient
	extractor *scheme.Extractor
	records   async.Queue
	stored    repository.WeatherRepository
	metrics   *metrics.Registry
	logger    *slog.Logger

	defaultLocation string
	now             func() time.Time
}

type Option func(*Service)

// WithRecordQueue persists every fetched reading through q.
func WithRecordQueue(q async.Queue) Option {
	return func(s *Service) { s.records = q }
}

// WithWeatherStore enables WeatherRecords.
func WithWeatherStore(repo repository.WeatherRepository) Option {
	return func(s *Service) { s.stored = repo }
}

func WithMetrics(reg *metrics.Registry) Option {
	return func(s *Service) { s.metrics = reg }
}

func WithDefaultLocation(location string) Option {
	return func(s *Service) {
		if loc := strings.TrimSpace(location); loc != "" {
			s.defaultLocation = loc
		}
	}
}

func NewService(weather WeatherFetcher, chat llm.ChatClient, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		weather:         weather,
		chat:            chat,
		extractor:       scheme.NewExtractor(logger),
		logger:          logger,
		defaultLocation: constants.DefaultLocation,
		now:             time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// WeatherResult is a reading for a named location on a given day.
type WeatherResult struct {
	Location string `json:"location"`
	entity.WeatherReading
	Date string `json:"date"`
}

// WeatherAdvice is the free-text suggestion for a location's weather.
type WeatherAdvice struct {
	Suggestion  string      `json:"suggestion"`
	WeatherInfo WeatherInfo `json:"weatherInfo"`
}

// WeatherInfo is the subset of a reading that is shown alongside advice.
type WeatherInfo struct {
	Temperature float64 `json:"temperature"`
	WeatherType string  `json:"weatherType"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
}

// ClothesAdvice is the garment-driven recommendation.
type ClothesAdvice struct {
	Suggestion  string                `json:"suggestion"`
	ColorScheme string                `json:"colorScheme"`
	Reasoning   string                `json:"reasoning"`
	Scene       *string               `json:"scene"`
	Clothes     []entity.UserGarment  `json:"clothes"`
	Schemes     []entity.OutfitScheme `json:"schemes"`
	ImageConfig entity.ImageConfig    `json:"imageConfig"`
}

// Weather fetches the reading for location, or the default location when
// it is blank, and queues it for storage.
func (s *Service) Weather(ctx context.Context, location string) (*WeatherResult, error) {
	loc := strings.TrimSpace(location)
	if loc == "" {
		loc = s.defaultLocation
	}

	reading, err := s.fetchWeather(ctx, loc)
	if err != nil {
		return nil, err
	}

	res := &WeatherResult{
		Location:       loc,
		WeatherReading: reading,
		Date:           s.now().Format(constants.DateLayout),
	}
	s.persist(ctx, res)
	return res, nil
}

// WeatherRecords lists stored readings for location, newest first.
func (s *Service) WeatherRecords(ctx context.Context, location string, limit int) ([]entity.WeatherRecord, error) {
	if s.stored == nil {
		return nil, common.FailedPreconditionError("weather records are not stored")
	}
	loc := strings.TrimSpace(location)
	if loc == "" {
		loc = s.defaultLocation
	}
	if limit < 0 || limit > maxRecordLimit {
		return nil, common.InvalidArgumentErrorf("limit must be between 0 and %d", maxRecordLimit)
	}

	recs, err := s.stored.ListByLocation(ctx, loc, limit)
	if err != nil {
		return nil, common.InternalErrorf("list weather records: %v", err)
	}
	return recs, nil
}

// GenerateByWeather asks the model for advice suited to the current
// weather at location.
func (s *Service) GenerateByWeather(ctx context.Context, location string) (*WeatherAdvice, error) {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return nil, common.InvalidArgumentError(msgLocationRequired)
	}

	reading, err := s.fetchWeather(ctx, loc)
	if err != nil {
		return nil, err
	}

	suggestion, err := s.complete(ctx, "weather", llm.WeatherPrompt(reading))
	if err != nil {
		return nil, err
	}

	return &WeatherAdvice{
		Suggestion: suggestion,
		WeatherInfo: WeatherInfo{
			Temperature: reading.Temperature,
			WeatherType: reading.WeatherType,
			Humidity:    reading.Humidity,
			Description: reading.Description,
		},
	}, nil
}

// GenerateByClothes asks the model to style the given garments and parses
// its answer into at least scheme.MinSchemes distinct outfits.
func (s *Service) GenerateByClothes(ctx context.Context, garments []entity.UserGarment, scene string) (*ClothesAdvice, error) {
	if len(garments) == 0 {
		return nil, common.InvalidArgumentError(msgClothesRequired)
	}
	logger := common.LoggerFromContext(ctx, s.logger)
	scene = strings.TrimSpace(scene)

	text, err := s.complete(ctx, "clothes", llm.ClothesPrompt(garments, scene))
	if err != nil {
		return nil, err
	}

	extracted := s.extractor.Extract(text, garments)
	unique := scheme.Dedupe(extracted, logger)
	schemes := scheme.TopUp(unique, scheme.GarmentsBySlot(garments), scheme.MinSchemes)

	s.metrics.Inc(ctx, metrics.SchemesExtracted, nil, int64(len(extracted)))
	if dup := len(extracted) - len(unique); dup > 0 {
		s.metrics.Inc(ctx, metrics.SchemesDuplicate, nil, int64(dup))
	}
	if added := len(schemes) - len(unique); added > 0 {
		s.metrics.Inc(ctx, metrics.SchemesSynthesized, nil, int64(added))
	}
	logger.Info("outfit.schemes.ok",
		"garments", len(garments),
		"extracted", len(extracted),
		"returned", len(schemes),
	)

	advice := &ClothesAdvice{
		Suggestion:  text,
		ColorScheme: scheme.ColorAnalysis(text),
		Reasoning:   scheme.Reasoning(text),
		Clothes:     garments,
		Schemes:     schemes,
		ImageConfig: scheme.BuildImageConfig(garments),
	}
	if scene != "" {
		advice.Scene = &scene
	}
	return advice, nil
}

// ImageConfig maps the garments onto the avatar preview without calling
// the model.
func (s *Service) ImageConfig(garments []entity.UserGarment) (entity.ImageConfig, error) {
	if len(garments) == 0 {
		return entity.ImageConfig{}, common.InvalidArgumentError(msgClothesRequired)
	}
	return scheme.BuildImageConfig(garments), nil
}

func (s *Service) fetchWeather(ctx context.Context, location string) (entity.WeatherReading, error) {
	reading, err := s.weather.Fetch(ctx, location)
	if err != nil {
		s.metrics.Inc(ctx, metrics.WeatherFetches, map[string]string{"outcome": "error"}, 1)
		if ctx.Err() != nil {
			return entity.WeatherReading{}, status.FromContextError(ctx.Err()).Err()
		}
		return entity.WeatherReading{}, common.UnavailableError(err.Error())
	}
	s.metrics.Inc(ctx, metrics.WeatherFetches, map[string]string{"outcome": "ok"}, 1)
	return reading, nil
}

func (s *Service) complete(ctx context.Context, kind string, messages []llm.Message) (string, error) {
	text, err := s.chat.Complete(ctx, messages)
	if err != nil {
		s.metrics.Inc(ctx, metrics.LLMCompletions, map[string]string{"kind": kind, "outcome": "error"}, 1)
		common.LoggerFromContext(ctx, s.logger).Error("outfit.llm.failed", "kind", kind, "error", err)
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			return "", common.FailedPreconditionError(llm.ErrNotConfigured.Error())
		case ctx.Err() != nil:
			return "", status.FromContextError(ctx.Err()).Err()
		}
		return "", common.UnavailableErrorf("AI生成建议失败: %v", err)
	}
	s.metrics.Inc(ctx, metrics.LLMCompletions, map[string]string{"kind": kind, "outcome": "ok"}, 1)
	return text, nil
}

// persist queues the reading. A failure to queue does not fail the request.
func (s *Service) persist(ctx context.Context, res *WeatherResult) {
	if s.records == nil {
		return
	}
	job := async.Job{
		Record: entity.WeatherRecord{
			Date:           res.Date,
			Location:       res.Location,
			WeatherReading: res.WeatherReading,
		},
		SubmittedAt: s.now(),
		RequestID:   common.RequestIDFromContext(ctx),
	}
	if err := s.records.Enqueue(ctx, job); err != nil {
		common.LoggerFromContext(ctx, s.logger).Warn("weather.persist.enqueue_failed",
			"location", res.Location, "error", err)
	}
}

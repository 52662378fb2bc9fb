package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/joseph-ayodele/outfit-advisor/internal/metrics"
)

const defaultBodyLimit = "10M"

type Config struct {
	CORSOrigins []string
	BodyLimit   string
}

// Deps are the services the HTTP API serves. Health is optional; when set
// it backs GET /health.
type Deps struct {
	Outfits OutfitService
	History HistoryService
	Metrics *metrics.Registry
	Health  func(ctx context.Context) error
}

// Server is the JSON HTTP API.
type Server struct {
	echo   *echo.Echo
	health func(ctx context.Context) error
	logger *slog.Logger
}

func New(cfg Config, deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	limit := cfg.BodyLimit
	if limit == "" {
		limit = defaultBodyLimit
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(RequestLogger(logger, deps.Metrics))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(limit))

	s := &Server{echo: e, health: deps.Health, logger: logger}
	e.GET("/health", s.handleHealth)
	if deps.Metrics != nil {
		e.GET("/metrics", deps.Metrics.Handler)
	}

	api := e.Group("/api")
	weather := NewWeatherHandler(deps.Outfits, logger)
	api.GET("/weather", weather.Current)
	api.GET("/weather/records", weather.Records)

	outfits := NewOutfitHandler(deps.Outfits, logger)
	api.POST("/outfit/generate", outfits.Generate)
	api.POST("/outfit/generate-by-clothes", outfits.GenerateByClothes)
	api.POST("/outfit/generate-image", outfits.GenerateImage)

	history := NewHistoryHandler(deps.History, logger)
	api.POST("/history/save", history.Save)
	api.GET("/history", history.List)
	api.GET("/history/export", history.Export)
	api.GET("/history/:id", history.Get)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Start serves on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	body := map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}
	if s.health != nil {
		if err := s.health(c.Request().Context()); err != nil {
			s.logger.Warn("health check failed", "error", err)
			body["status"] = "degraded"
			return c.JSON(http.StatusServiceUnavailable, body)
		}
	}
	return c.JSON(http.StatusOK, body)
}

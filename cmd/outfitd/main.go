package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joseph-ayodele/outfit-advisor/internal/async"
	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/export"
	"github.com/joseph-ayodele/outfit-advisor/internal/history"
	"github.com/joseph-ayodele/outfit-advisor/internal/llm"
	"github.com/joseph-ayodele/outfit-advisor/internal/llm/gemini"
	"github.com/joseph-ayodele/outfit-advisor/internal/llm/openai"
	"github.com/joseph-ayodele/outfit-advisor/internal/metrics"
	"github.com/joseph-ayodele/outfit-advisor/internal/outfit"
	repo "github.com/joseph-ayodele/outfit-advisor/internal/repository"
	"github.com/joseph-ayodele/outfit-advisor/internal/server"
	"github.com/joseph-ayodele/outfit-advisor/internal/weather"
)

func main() {
	cfg, err := common.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Server.LogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// no timestamps
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "driver", cfg.Database.Driver)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.HealthCheck(ctx, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := store.Migrate(ctx); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	weatherRepo := repo.NewWeatherRepository(store, logger)
	historyRepo := repo.NewHistoryRepository(store, logger)
	reg := metrics.NewRegistry()

	httpClient := &http.Client{Timeout: cfg.Weather.Timeout}
	weatherSvc := weather.NewService([]weather.Provider{
		&weather.OpenWeatherMap{
			BaseURL: cfg.Weather.OpenWeatherURL,
			APIKey:  cfg.Weather.APIKey,
			Client:  httpClient,
			Logger:  logger,
		},
		&weather.Wttr{
			BaseURL: cfg.Weather.WttrURL,
			Client:  httpClient,
			Logger:  logger,
		},
	}, weather.Options{
		Timeout:       cfg.Weather.Timeout,
		RatePerSecond: cfg.Weather.RatePerSecond,
		Burst:         cfg.Weather.Burst,
	}, logger)

	chat := newChatClient(cfg, logger)

	queue := async.NewRecordQueue(weatherRepo, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.TaskTimeout),
	)

	outfitSvc := outfit.NewService(weatherSvc, chat, logger,
		outfit.WithRecordQueue(queue),
		outfit.WithWeatherStore(weatherRepo),
		outfit.WithMetrics(reg),
		outfit.WithDefaultLocation(cfg.Weather.DefaultLocation),
	)
	historySvc := history.NewService(historyRepo, export.NewService(historyRepo, logger), logger)

	httpServer := server.New(server.Config{CORSOrigins: cfg.Server.CORSOrigins}, server.Deps{
		Outfits: outfitSvc,
		History: historySvc,
		Metrics: reg,
		Health: func(ctx context.Context) error {
			return store.HealthCheck(ctx, 2*time.Second)
		},
	}, logger)

	// gRPC health and reflection for probes and grpcurl
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	errCh := make(chan error, 2)
	go func() {
		logger.Info("grpc health listening", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- err
		}
	}()
	go func() {
		if err := httpServer.Start(cfg.Server.HTTPAddr); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server failed", "error", err)
	}

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("outfit-advisor stopped")
}

func newChatClient(cfg *common.Config, logger *slog.Logger) llm.ChatClient {
	if cfg.LLM.Provider == "gemini" {
		return gemini.NewClient(gemini.Config{
			APIKey:      cfg.Gemini.APIKey,
			Model:       cfg.Gemini.Model,
			Temperature: float32(cfg.LLM.Temperature),
			MaxTokens:   int32(cfg.LLM.MaxTokens),
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}
	if cfg.LLM.APIKey == "" {
		logger.Warn("DEEPSEEK_API_KEY is not set; outfit generation will fail until it is configured")
	}
	return openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
}

package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joseph-ayodele/outfit-advisor/internal/cli"
	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/llm"
	"github.com/joseph-ayodele/outfit-advisor/internal/llm/openai"
	"github.com/joseph-ayodele/outfit-advisor/internal/scheme"
)

// Sends the same garment prompt several times and logs how many schemes
// each completion yields, to check extraction against live model output.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 3 {
		logger.Error("usage: llm <times> <name:type[:color]>...")
		os.Exit(2)
	}
	times, err := strconv.Atoi(os.Args[1])
	if err != nil || times <= 0 {
		logger.Error("invalid times", "arg", os.Args[1])
		os.Exit(2)
	}
	garments, err := cli.ParseGarments(os.Args[2:])
	if err != nil {
		logger.Error("invalid garment", "error", err)
		os.Exit(2)
	}

	cfg, err := common.LoadConfig()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	if cfg.LLM.APIKey == "" {
		logger.Error("DEEPSEEK_API_KEY env var is required")
		os.Exit(2)
	}

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	extractor := scheme.NewExtractor(logger)
	prompt := llm.ClothesPrompt(garments, os.Getenv("SCENE"))

	for i := 1; i <= times; i++ {
		runCtx, cancelRun := context.WithTimeout(context.Background(), 2*time.Minute)
		start := time.Now()
		logger.Info("probe.run.start", "iter", i)

		text, err := client.Complete(runCtx, prompt)
		cancelRun()
		if err != nil {
			logger.Error("probe.run.error", "iter", i, "err", err)
			continue
		}

		blocks := scheme.Segment(text)
		schemes := scheme.Dedupe(extractor.Extract(text, garments), logger)
		logger.Info("probe.run.ok",
			"iter", i,
			"blocks", len(blocks),
			"unique_schemes", len(schemes),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)

		time.Sleep(750 * time.Millisecond)
	}

	logger.Info("done", "times", times)
}

package openai

import (
	"log/slog"
	"time"

	oai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Config for the OpenAI-compatible chat client. The defaults target DeepSeek.
type Config struct {
	APIKey      string
	BaseURL     string        // default https://api.deepseek.com/v1
	Model       string        // default deepseek-chat
	Temperature float64       // 0..2
	MaxTokens   int64         // completion budget
	Timeout     time.Duration // per request
}

type Client struct {
	cfg    Config
	sdk    oai.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.deepseek.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-chat"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.8
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1500
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg: cfg,
		sdk: oai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
			option.WithMaxRetries(0),
			option.WithRequestTimeout(cfg.Timeout),
		),
		logger: logger,
	}
}

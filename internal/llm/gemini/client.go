// Package gemini adapts the Google Gen AI SDK to llm.ChatClient.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/llm"
)

type Config struct {
	APIKey      string
	Model       string // default gemini-2.5-flash
	BaseURL     string // optional override of the Gemini API endpoint
	Temperature float32
	MaxTokens   int32
	Timeout     time.Duration
}

type Client struct {
	cfg    Config
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
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
	return &Client{cfg: cfg, logger: logger}
}

// Complete implements llm.ChatClient. System messages become the system
// instruction; assistant messages are sent with the model role.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	if c.cfg.APIKey == "" {
		return "", llm.ErrNotConfigured
	}

	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()
	c.logger.Info("llm.chat.start", "req_id", rid, "provider", "gemini", "model", c.cfg.Model, "messages", len(messages))

	clientConfig := &genai.ClientConfig{
		APIKey:     c.cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: c.cfg.Timeout},
	}
	if c.cfg.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = c.cfg.BaseURL
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	var system []string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case llm.RoleSystem:
			system = append(system, m.Content)
		case llm.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.cfg.Temperature),
		MaxOutputTokens: c.cfg.MaxTokens,
	}
	if len(system) > 0 {
		genConfig.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n"), genai.RoleUser)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()
	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, contents, genConfig)
	if err != nil {
		c.logger.Error("llm.chat.http_error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		c.logger.Warn("llm.chat.empty", "req_id", rid, "candidates", len(resp.Candidates))
		return llm.EmptyCompletion, nil
	}
	c.logger.Info("llm.chat.ok", "req_id", rid, "chars", len([]rune(content)), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}

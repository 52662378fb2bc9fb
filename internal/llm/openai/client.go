package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	oai "github.com/openai/openai-go/v3"

	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/llm"
)

// Complete implements llm.ChatClient with a single chat completion.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	if c.cfg.APIKey == "" {
		return "", llm.ErrNotConfigured
	}

	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()
	c.logger.Info("llm.chat.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"messages", len(messages),
	)

	params := oai.ChatCompletionNewParams{
		Model:       oai.ChatModel(c.cfg.Model),
		Messages:    toParams(messages),
		Temperature: oai.Float(c.cfg.Temperature),
		MaxTokens:   oai.Int(c.cfg.MaxTokens),
	}

	resp, err := c.sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.Error("llm.chat.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("chat completion: %w", err)
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if content == "" {
		c.logger.Warn("llm.chat.empty",
			"req_id", rid,
			"choices", len(resp.Choices),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.EmptyCompletion, nil
	}

	c.logger.Info("llm.chat.ok",
		"req_id", rid,
		"chars", len([]rune(content)),
		"total_tokens", resp.Usage.TotalTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func toParams(messages []llm.Message) []oai.ChatCompletionMessageParamUnion {
	out := make([]oai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case llm.RoleSystem:
			out = append(out, oai.SystemMessage(m.Content))
		case llm.RoleAssistant:
			out = append(out, oai.AssistantMessage(m.Content))
		default:
			out = append(out, oai.UserMessage(m.Content))
		}
	}
	return out
}

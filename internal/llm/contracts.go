package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by a chat client that has no API key.
var ErrNotConfigured = errors.New("LLM API密钥未配置")

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatClient is the interface the outfit service depends on. Complete
// returns the assistant text of a single completion.
type ChatClient interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// EmptyCompletion replaces a completion that came back without text.
const EmptyCompletion = "无法生成建议"

// internal/llm/openai_client.go
// Narasi cuaca singkat (briefing) lewat OpenAI Chat Completions

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ======================
// Interface (kontrak umum)
// ======================
type Client interface {
	// Jawaban naratif (non-JSON, non-stream)
	Complete(ctx context.Context, system, prompt string) (string, error)

	// Ambil nama model aktif
	Model() string
}

type Options struct {
	APIKey  string
	BaseURL string // opsional, untuk proxy/self-hosted endpoint
	Model   string
}

// ======================
// Implementasi OpenAIClient
// ======================
type OpenAIClient struct {
	api   *openai.Client
	model string
}

func New(o Options) (*OpenAIClient, error) {
	key := strings.TrimSpace(o.APIKey)
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}
	cfg := openai.DefaultConfig(key)
	if base := strings.TrimSpace(o.BaseURL); base != "" {
		cfg.BaseURL = base
	}
	model := strings.TrimSpace(o.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}, nil
}

func (c *OpenAIClient) Model() string { return c.model }

func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
		MaxTokens:   220,
	}

	var cancel context.CancelFunc
	if _, ok := ctx.Deadline(); !ok {
		ctx, cancel = context.WithTimeout(ctx, 18*time.Second)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

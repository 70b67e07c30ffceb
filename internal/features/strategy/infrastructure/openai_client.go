package infrastructure

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator implements Generator on top of the OpenAI
// chat-completions API.
type OpenAIGenerator struct {
	client  *openai.Client
	timeout time.Duration
}

// NewOpenAIGenerator creates an OpenAI-backed generator. An empty
// baseURL keeps the default API endpoint. The timeout bounds each
// individual request; zero disables it.
func NewOpenAIGenerator(apiKey, baseURL string, timeout time.Duration) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is not set")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGenerator{
		client:  openai.NewClientWithConfig(cfg),
		timeout: timeout,
	}, nil
}

// Generate sends one chat-completion request and returns the text of
// the first choice. Failures are not retried.
func (g *OpenAIGenerator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

package infrastructure

import (
	"context"
)

// Message roles understood by the chat-completion services.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message represents one role-tagged message in a generation request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationRequest is a single request to a text-generation service.
type GenerationRequest struct {
	Model       string    `json:"model"`
	Temperature float32   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []Message `json:"messages"`
}

// Generator defines a generic interface for text-generation services.
// The workflow depends only on this interface so that providers can be
// swapped and tests can substitute a double.
type Generator interface {
	// Generate performs one blocking request and returns the generated text.
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// newCompletionServer fakes the chat-completions endpoint, capturing
// the last request and replying with the given content.
func newCompletionServer(t *testing.T, content string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"id":      "cmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   captured.Model,
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
}

func TestNewOpenAIGeneratorRequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIGenerator("", "", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestGenerateMapsRequestAndReturnsContent(t *testing.T) {
	var captured capturedRequest
	server := newCompletionServer(t, "generated text", &captured)
	defer server.Close()

	generator, err := NewOpenAIGenerator("test-key", server.URL+"/v1", time.Minute)
	require.NoError(t, err)

	text, err := generator.Generate(context.Background(), GenerationRequest{
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   500,
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a senior market research analyst."},
			{Role: RoleUser, Content: "Provide competitor analysis."},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "generated text", text)

	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Equal(t, float32(0.7), captured.Temperature)
	assert.Equal(t, 500, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestGenerateFailsOnEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer server.Close()

	generator, err := NewOpenAIGenerator("test-key", server.URL+"/v1", time.Minute)
	require.NoError(t, err)

	_, err = generator.Generate(context.Background(), GenerationRequest{Model: "m", Temperature: 0.7, MaxTokens: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGenerateFailsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"requests"}}`))
	}))
	defer server.Close()

	generator, err := NewOpenAIGenerator("test-key", server.URL+"/v1", time.Minute)
	require.NoError(t, err)

	_, err = generator.Generate(context.Background(), GenerationRequest{Model: "m", Temperature: 0.7, MaxTokens: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion request failed")
}

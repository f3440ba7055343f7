// Package reasoning selects a storage zone from the safety-filtered eligible
// set and produces the natural-language justification. The selection is made
// either by an external chat model (Ollama or OpenRouter, both speaking the
// OpenAI-compatible chat completions protocol) or, when no backend is
// usable, by a deterministic fallback heuristic.
package reasoning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Sampling parameters for every completion call. Low temperature biases the
// model toward deterministic, parseable output.
const (
	chatTemperature = 0.3
	chatMaxTokens   = 500
)

// Backend is one chat-completion endpoint. Complete sends a system
// instruction plus one user prompt and returns the model's free-text reply.
type Backend interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Name() string
}

// chatBackend talks to any OpenAI-compatible chat completions API.
type chatBackend struct {
	name    string
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewOllamaBackend returns a backend against a local Ollama instance.
// Default base URL: http://localhost:11434/v1, default model: phi3:mini.
func NewOllamaBackend(baseURL, model string) Backend {
	if baseURL == "" {
		baseURL = "http://localhost:11434/v1"
	}
	if model == "" {
		model = "phi3:mini"
	}
	return &chatBackend{
		name:    "ollama",
		baseURL: baseURL,
		apiKey:  "ollama", // Ollama ignores the key but the protocol requires one
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// NewOpenRouterBackend returns a backend against the OpenRouter hosted API.
// Default model: microsoft/phi-3-mini-128k-instruct.
func NewOpenRouterBackend(baseURL, apiKey, model string) Backend {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if model == "" {
		model = "microsoft/phi-3-mini-128k-instruct"
	}
	return &chatBackend{
		name:    "openrouter",
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (b *chatBackend) Name() string { return b.name }

func (b *chatBackend) Complete(ctx context.Context, system, user string) (string, error) {
	body, _ := json.Marshal(chatRequest{
		Model: b.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	req, err := http.NewRequestWithContext(ctx, "POST", b.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &BackendError{Backend: b.name, Kind: "transport", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if b.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.apiKey)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", &BackendError{Backend: b.name, Kind: "transport", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		raw, _ := io.ReadAll(resp.Body)
		return "", &BackendError{
			Backend: b.name,
			Kind:    "status",
			Err:     fmt.Errorf("status %d: %s", resp.StatusCode, string(raw)),
		}
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &BackendError{Backend: b.name, Kind: "decode", Err: err}
	}
	if len(result.Choices) == 0 {
		return "", nil
	}
	return result.Choices[0].Message.Content, nil
}

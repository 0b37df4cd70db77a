// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mdmze/advice-engine/internal/httputil"
	"github.com/mdmze/advice-engine/pkg/types"
)

// openaiAPIBase is the chat completions endpoint root. Declared as a var
// so tests can substitute an httptest server.
var openaiAPIBase = "https://api.openai.com/v1"

const (
	defaultModel       = "gpt-4"
	defaultMaxTokens   = 1500
	defaultTemperature = 0.7
)

// OpenAIClient implements Completer against the OpenAI chat completions
// API.
type OpenAIClient struct {
	Client *http.Client
	APIKey string
	Config types.ChatConfig
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the system and user messages and returns the first
// choice's content.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	model := c.Config.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := c.Config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := c.Config.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	payload, err := json.Marshal(completionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		openaiAPIBase+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := httputil.DoWithRetry(ctx, c.Client, req, 0)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	var cr completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("parsing completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if cr.Error != nil {
			return "", fmt.Errorf("completion API: %s", cr.Error.Message)
		}
		return "", fmt.Errorf("completion API returned HTTP %d", resp.StatusCode)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}

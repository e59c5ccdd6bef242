// Package ollama talks to a local Ollama daemon. Keyless; no temperature is
// sent, the daemon applies its own model defaults.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Jaruso/bareclaw/internal/utils"
)

const defaultBaseURL = "http://localhost:11434"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Name() string {
	return "ollama"
}

type output struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	Error string `json:"error,omitempty"`
}

func (c *Client) Chat(ctx context.Context, system, user, model string, _ float64) (string, error) {
	status, raw, err := utils.POSTRaw(ctx, c.httpClient, c.baseURL+"/api/chat", nil, map[string]any{
		"model":  model,
		"stream": false,
		"messages": []map[string]any{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("utils.POSTRaw: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Sprintf("HTTP %d: %s", status, raw), nil
	}

	var result output
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("json.Unmarshal: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("ollama: %s", result.Error)
	}
	return result.Message.Content, nil
}

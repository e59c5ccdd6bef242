// Package openai speaks the chat-completions wire format shared by OpenAI,
// OpenAI-compatible servers, and OpenRouter; the three differ only in base
// URL and extra headers.
package openai

import (
	"net/http"
	"strings"
)

type Kind int

const (
	KindOpenAI Kind = iota
	KindCompatible
	KindOpenRouter
)

const (
	openAIBaseURL     = "https://api.openai.com/v1"
	openRouterBaseURL = "https://openrouter.ai/api/v1"
)

type Client struct {
	httpClient *http.Client
	kind       Kind
	apiKey     string
	baseURL    string
}

func New(kind Kind, apiKey, baseURL string) *Client {
	if baseURL == "" {
		switch kind {
		case KindOpenRouter:
			baseURL = openRouterBaseURL
		default:
			baseURL = openAIBaseURL
		}
	}
	return &Client{
		httpClient: &http.Client{},
		kind:       kind,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Name() string {
	switch c.kind {
	case KindCompatible:
		return "openai-compatible"
	case KindOpenRouter:
		return "openrouter"
	default:
		return "openai"
	}
}

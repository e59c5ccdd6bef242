package anthropic

import (
	"net/http"
	"strings"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"
	defaultMaxTokens = 8096
)

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	maxTokens  int
}

func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxTokens:  defaultMaxTokens,
	}
}

func (c *Client) Name() string {
	return "anthropic"
}

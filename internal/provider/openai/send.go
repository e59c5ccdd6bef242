package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Jaruso/bareclaw/internal/utils"
)

type output struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) Chat(ctx context.Context, system, user, model string, temperature float64) (string, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
		"Content-Type":  "application/json",
	}
	if c.kind == KindOpenRouter {
		headers["HTTP-Referer"] = "https://github.com/Jaruso/bareclaw"
		headers["X-Title"] = "BareClaw"
	}

	status, raw, err := utils.POSTRaw(ctx, c.httpClient, c.baseURL+"/chat/completions", headers, map[string]any{
		"model":       model,
		"temperature": temperature,
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
	if result.Error != nil {
		return "", fmt.Errorf("%s: %s", c.Name(), result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%s: empty choices", c.Name())
	}
	return result.Choices[0].Message.Content, nil
}

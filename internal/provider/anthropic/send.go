package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Jaruso/bareclaw/internal/utils"
)

// Chat posts one user message to the Messages API. Text blocks of the reply
// are newline-joined; tool_use blocks are translated into the OpenAI-style
// tool_calls JSON so the agent loop stays provider-agnostic.
func (c *Client) Chat(ctx context.Context, system, user, model string, temperature float64) (string, error) {
	status, raw, err := utils.POSTRaw(ctx, c.httpClient, c.baseURL+"/v1/messages", map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": anthropicVersion,
		"content-type":      "application/json",
	}, map[string]any{
		"model":       model,
		"max_tokens":  c.maxTokens,
		"temperature": temperature,
		"system":      system,
		"messages": []map[string]any{
			{"role": "user", "content": user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("utils.POSTRaw: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Sprintf("HTTP %d: %s", status, raw), nil
	}

	var result Output
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("json.Unmarshal: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("anthropic: %s", result.Error.Message)
	}

	return convertToText(&result)
}

type toolCall struct {
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

func convertToText(resp *Output) (string, error) {
	var texts []string
	var toolCalls []toolCall

	for _, item := range resp.Content {
		switch item.Type {
		case "text":
			texts = append(texts, item.Text)
		case "tool_use":
			args := "{}"
			if item.Input != nil {
				data, err := json.Marshal(item.Input)
				if err != nil {
					continue
				}
				args = string(data)
			}
			var tc toolCall
			tc.Function.Name = item.Name
			tc.Function.Arguments = args
			toolCalls = append(toolCalls, tc)
		}
	}

	text := strings.Join(texts, "\n")
	if len(toolCalls) == 0 {
		return text, nil
	}

	payload, err := json.Marshal(map[string]any{"tool_calls": toolCalls})
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}
	if text == "" {
		return string(payload), nil
	}
	return text + "\n" + string(payload), nil
}

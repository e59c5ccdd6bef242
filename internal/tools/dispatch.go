package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

const (
	DefaultMaxContextChars = 12000
	minContextChars        = 4000
	maxContextChars        = 64000

	// TruncationMarker is prepended to the context buffer after eviction.
	TruncationMarker = "[... earlier tool results truncated due to context budget ...]\n"
)

func clampContextBudget(n int) int {
	switch {
	case n < minContextChars:
		return minContextChars
	case n > maxContextChars:
		return maxContextChars
	default:
		return n
	}
}

// rawCall tolerates both tool-call shapes models emit:
//
//	{"function":{"name":N,"arguments":"<json string>"}}   (OpenAI style)
//	{"function":N,"arguments":{...}}                      (common variant)
type rawCall struct {
	Function  json.RawMessage `json:"function"`
	Arguments json.RawMessage `json:"arguments"`
}

func (c *rawCall) decode() (name, argsJSON string, ok bool) {
	// Shape B: function is a bare name string.
	if err := json.Unmarshal(c.Function, &name); err == nil && name != "" {
		return name, decodeArgs(c.Arguments), true
	}

	// Shape A: function is an object carrying name and arguments.
	var fn struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(c.Function, &fn); err == nil && fn.Name != "" {
		args := fn.Arguments
		if len(args) == 0 {
			args = c.Arguments
		}
		return fn.Name, decodeArgs(args), true
	}
	return "", "", false
}

// decodeArgs normalises an arguments value to an args-JSON string: quoted
// strings are unwrapped, objects pass through verbatim, anything else
// serialises back to {}.
func decodeArgs(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if json.Valid([]byte(s)) {
			return s
		}
		return "{}"
	}

	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") && json.Valid(raw) {
		return trimmed
	}
	return "{}"
}

// Dispatch extracts tool calls from a model response, runs them in emission
// order, and appends each outcome to the context buffer under the given
// budget. Returns false when the response carries no tool calls, which makes
// it the turn's final answer.
//
// Failures never propagate: an execute error becomes a "tool error" entry,
// and a name the registry does not know is skipped.
func (r *Registry) Dispatch(ctx *Context, response string, buffer *string, maxContext int) bool {
	obj, ok := ExtractJSON(response)
	if !ok {
		return false
	}

	var parsed struct {
		ToolCalls []rawCall `json:"tool_calls"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil || len(parsed.ToolCalls) == 0 {
		return false
	}

	budget := clampContextBudget(maxContext)
	for _, call := range parsed.ToolCalls {
		name, argsJSON, ok := call.decode()
		if !ok {
			continue
		}

		tool := r.Find(name)
		if tool == nil {
			slog.Debug("model requested unknown tool", slog.String("name", name))
			continue
		}

		result := r.run(ctx, tool, argsJSON)

		status := "ok"
		if !result.Success {
			status = "error"
		}
		appendWithBudget(buffer, fmt.Sprintf("[%s] %s: %s\n", status, name, result.Output), budget)
	}
	return true
}

func (r *Registry) run(ctx *Context, tool *Tool, argsJSON string) Result {
	prev := ctx.CurrentMeta
	ctx.CurrentMeta = tool.Meta
	defer func() { ctx.CurrentMeta = prev }()

	result, err := tool.Execute(ctx, json.RawMessage(argsJSON))
	if err != nil {
		return Result{Success: false, Output: fmt.Sprintf("tool error: %v", err)}
	}
	return result
}

// appendWithBudget appends entry and, when the buffer overflows the budget,
// evicts from the front at the next newline past the overflow amount before
// prepending the truncation marker.
func appendWithBudget(buffer *string, entry string, budget int) {
	b := *buffer + entry
	if len(b) <= budget {
		*buffer = b
		return
	}

	overflow := len(b) - budget
	cut := overflow
	if idx := strings.IndexByte(b[overflow:], '\n'); idx >= 0 {
		cut = overflow + idx + 1
	}
	*buffer = TruncationMarker + b[cut:]
}

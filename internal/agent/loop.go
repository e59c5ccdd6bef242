// Package agent runs the bounded tool-calling conversation: call the
// provider, dispatch any tool calls it emitted, feed the results back, and
// stop at the first plain-text answer.
package agent

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Jaruso/bareclaw/internal/memory"
	"github.com/Jaruso/bareclaw/internal/provider"
	"github.com/Jaruso/bareclaw/internal/tools"
)

const (
	MaxToolRounds      = 8
	defaultTemperature = 0.7

	exhaustedMessage = "(agent reached max tool-call rounds)"
)

// Agent binds one provider/registry/memory stack. Turns are synchronous; a
// single Agent must not run interleaved turns.
type Agent struct {
	Provider        provider.Provider
	Model           string
	Memory          *memory.Store
	Registry        *tools.Registry
	ToolCtx         *tools.Context
	MaxContextChars int
}

func New(p provider.Provider, model string, mem *memory.Store, registry *tools.Registry, toolCtx *tools.Context) *Agent {
	toolCtx.ProviderName = p.Name()
	toolCtx.ToolCount = registry.Len()
	return &Agent{
		Provider:        p,
		Model:           model,
		Memory:          mem,
		Registry:        registry,
		ToolCtx:         toolCtx,
		MaxContextChars: tools.DefaultMaxContextChars,
	}
}

// Run executes one full turn for userMessage, writing the final answer to
// out. Tool failures never abort the turn; only a provider error does.
func (a *Agent) Run(ctx context.Context, userMessage string, out io.Writer) error {
	system := BuildSystemPrompt(a.Registry)

	var buffer string
	for round := 1; round <= MaxToolRounds; round++ {
		effective := userMessage
		if round > 1 {
			effective = fmt.Sprintf(
				"%s\n\n[Tool results]\n%s\n[Instructions] Use the tool results above to respond in plain friendly text. Do NOT output any JSON or tool_calls.",
				userMessage, buffer,
			)
		}

		response, err := a.Provider.Chat(ctx, system, effective, a.Model, defaultTemperature)
		if err != nil {
			return fmt.Errorf("provider.Chat: %w", err)
		}

		if a.Registry.Dispatch(a.ToolCtx, response, &buffer, a.MaxContextChars) {
			slog.Debug("tool round complete", slog.Int("round", round), slog.Int("buffer", len(buffer)))
			continue
		}

		// Plain text: this is the final answer.
		if err := a.Memory.Store("last_message", userMessage); err != nil {
			slog.Warn("failed to store last_message", slog.String("error", err.Error()))
		}
		fmt.Fprintln(out, response)
		return nil
	}

	fmt.Fprintln(out, exhaustedMessage)
	return nil
}

// RunCaptured runs one turn and returns the final answer as a string.
func (a *Agent) RunCaptured(ctx context.Context, userMessage string) (string, error) {
	var buf bytes.Buffer
	if err := a.Run(ctx, userMessage, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

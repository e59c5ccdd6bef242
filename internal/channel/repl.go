// Package channel connects transports to the agent loop: a stdin REPL, the
// Discord gateway, Telegram long-polling, and the local HTTP gateway. Each
// adapter owns its timeouts and identity filtering; one message maps to one
// agent turn.
package channel

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Jaruso/bareclaw/internal/agent"
)

// RunREPL reads lines from in and runs one agent turn per line. "/quit" ends
// the session; blank lines are ignored.
func RunREPL(ctx context.Context, a *agent.Agent, in io.Reader, out io.Writer) error {
	history := agent.NewHistory()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Fprintln(out, "BareClaw REPL. /quit to exit.")
	fmt.Fprint(out, "> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			fmt.Fprint(out, "> ")
			continue
		case line == "/quit":
			return nil
		}

		response, err := a.RunCaptured(ctx, line)
		if err != nil {
			return fmt.Errorf("agent.RunCaptured: %w", err)
		}
		fmt.Fprint(out, response)

		history.Add("user", line)
		history.Add("assistant", response)
		history.Trim(4 * a.MaxContextChars)

		fmt.Fprint(out, "> ")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Err: %w", err)
	}
	return nil
}

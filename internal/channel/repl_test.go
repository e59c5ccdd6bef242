package channel

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Jaruso/bareclaw/internal/agent"
	"github.com/Jaruso/bareclaw/internal/memory"
	"github.com/Jaruso/bareclaw/internal/security"
	"github.com/Jaruso/bareclaw/internal/tools"
)

type canned struct{ reply string }

func (canned) Name() string { return "canned" }

func (c canned) Chat(context.Context, string, string, string, float64) (string, error) {
	return c.reply, nil
}

func newREPLAgent(t *testing.T, reply string) *agent.Agent {
	t.Helper()
	ws := t.TempDir()
	policy := security.NewPolicy(ws)
	mem := memory.NewStore(ws)
	registry := tools.NewRegistry()
	registry.RegisterCore()
	return agent.New(canned{reply: reply}, "m", mem, registry, tools.NewContext(policy, mem, nil))
}

func TestREPLTurnAndQuit(t *testing.T) {
	a := newREPLAgent(t, "the answer")

	in := strings.NewReader("what is it?\n/quit\n")
	var out bytes.Buffer

	if err := RunREPL(context.Background(), a, in, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "the answer") {
		t.Errorf("output = %q", out.String())
	}
}

func TestREPLSkipsBlankLines(t *testing.T) {
	a := newREPLAgent(t, "reply")

	in := strings.NewReader("\n\n/quit\n")
	var out bytes.Buffer

	if err := RunREPL(context.Background(), a, in, &out); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "reply") {
		t.Error("blank lines must not trigger agent turns")
	}
}

func TestREPLEOF(t *testing.T) {
	a := newREPLAgent(t, "x")
	var out bytes.Buffer

	if err := RunREPL(context.Background(), a, strings.NewReader(""), &out); err != nil {
		t.Fatal(err)
	}
}

package tools

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func run(t *testing.T, ctx *Context, name, args string) Result {
	t.Helper()
	r := NewRegistry()
	r.RegisterCore()

	tool := r.Find(name)
	if tool == nil {
		t.Fatalf("tool %q not registered", name)
	}
	result, err := tool.Execute(ctx, json.RawMessage(args))
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return result
}

func TestShellRunsCommand(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "shell", `{"command":"printf hello"}`)
	if !result.Success || result.Output != "hello" {
		t.Errorf("result = %+v", result)
	}
}

func TestShellStderrFallback(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "shell", `{"command":"printf oops >&2"}`)
	if !result.Success || result.Output != "oops" {
		t.Errorf("result = %+v", result)
	}
}

func TestShellNonZeroExit(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "shell", `{"command":"exit 3"}`)
	if result.Success {
		t.Error("non-zero exit should not be success")
	}
}

func TestShellBlockedCommand(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "shell", `{"command":"rm -rf /"}`)
	if result.Success || !strings.Contains(result.Output, "blocked") {
		t.Errorf("result = %+v", result)
	}

	// The attempt is still audited.
	lines := auditLines(t, ctx)
	if len(lines) != 1 || !strings.Contains(lines[0], "\tshell\t") {
		t.Errorf("audit = %v", lines)
	}
}

// S2: path traversal is refused, audited, and nothing is read.
func TestFileReadTraversal(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "file_read", `{"path":"../etc/passwd"}`)
	if result.Success {
		t.Error("traversal must fail")
	}
	if result.Output != "file_read: path outside workspace is not allowed" {
		t.Errorf("output = %q", result.Output)
	}

	lines := auditLines(t, ctx)
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "\tfile_read\t../etc/passwd") {
		t.Errorf("audit = %v", lines)
	}
}

func TestFileWriteThenRead(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "file_write", `{"path":"notes/a.txt","content":"body"}`)
	if !result.Success || result.Output != "wrote 4 bytes to notes/a.txt" {
		t.Errorf("write result = %+v", result)
	}

	result = run(t, ctx, "file_read", `{"path":"notes/a.txt"}`)
	if !result.Success || result.Output != "body" {
		t.Errorf("read result = %+v", result)
	}
}

func TestFileReadMissing(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "file_read", `{"path":"nope.txt"}`)
	if result.Success {
		t.Error("missing file should not be success")
	}
}

// Property 5: capped output preserves the prefix and appends the marker.
func TestCapOutput(t *testing.T) {
	ctx := newTestContext(t)
	ctx.MaxToolOutputChars = 1000

	raw := strings.Repeat("x", 2500)
	got := ctx.Cap(raw)

	wantMarker := "\n[... output truncated at 1000 chars ...]"
	if !strings.HasSuffix(got, wantMarker) {
		t.Fatalf("missing marker: %q", got[len(got)-60:])
	}
	if got[:1000] != raw[:1000] {
		t.Error("capped output must preserve the raw prefix")
	}
	if len(got) != 1000+len(wantMarker) {
		t.Errorf("len = %d", len(got))
	}

	short := "short"
	if ctx.Cap(short) != short {
		t.Error("short output must pass through")
	}
}

func TestOutputLimitClamped(t *testing.T) {
	ctx := newTestContext(t)

	ctx.MaxToolOutputChars = 10
	if got := ctx.outputLimit(); got != 1000 {
		t.Errorf("low clamp = %d", got)
	}
	ctx.MaxToolOutputChars = 1 << 20
	if got := ctx.outputLimit(); got != 32000 {
		t.Errorf("high clamp = %d", got)
	}
}

// S3: args split into inert argv tokens, no shell involved.
func TestGitArgv(t *testing.T) {
	got := gitArgv("log", ".", "--oneline ; rm -rf /")
	want := []string{"git", "-C", ".", "log", "--oneline", ";", "rm", "-rf", "/"}

	if len(got) != len(want) {
		t.Fatalf("argv = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGitArgvCollapsesEmptyTokens(t *testing.T) {
	got := gitArgv("status", ".", "")
	if len(got) != 4 {
		t.Errorf("argv = %v", got)
	}
}

func TestGitUnknownOp(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "git_operations", `{"op":"filter-branch","path":"."}`)
	if result.Success || !strings.Contains(result.Output, "not allowed") {
		t.Errorf("result = %+v", result)
	}
}

func TestMemoryToolsRoundTrip(t *testing.T) {
	ctx := newTestContext(t)

	if result := run(t, ctx, "memory_store", `{"key":"color","content":"blue"}`); !result.Success {
		t.Fatalf("store: %+v", result)
	}
	if result := run(t, ctx, "memory_recall", `{"key":"color"}`); result.Output != "blue\n" {
		t.Errorf("recall: %+v", result)
	}
	if result := run(t, ctx, "memory_list_keys", `{}`); !strings.Contains(result.Output, "color") {
		t.Errorf("list: %+v", result)
	}
	if result := run(t, ctx, "memory_forget", `{"key":"color"}`); !result.Success {
		t.Errorf("forget: %+v", result)
	}
	if result := run(t, ctx, "memory_delete_prefix", `{"prefix":"color"}`); result.Output != "deleted 0 entries" {
		t.Errorf("delete_prefix: %+v", result)
	}
}

func TestMemoryStoreDefaultKey(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "memory_store", `{"content":"note"}`)
	if !result.Success || result.Output != "stored under default" {
		t.Errorf("result = %+v", result)
	}
}

func TestAgentStatus(t *testing.T) {
	ctx := newTestContext(t)
	ctx.ProviderName = "echo"
	ctx.Memory.Store("a", "1")

	result := run(t, ctx, "agent_status", `{}`)
	if !result.Success {
		t.Fatalf("result = %+v", result)
	}
	for _, want := range []string{ctx.Policy.WorkspaceDir, "memory entries: 1", "provider: echo"} {
		if !strings.Contains(result.Output, want) {
			t.Errorf("status missing %q: %q", want, result.Output)
		}
	}
}

func TestAuditLogRead(t *testing.T) {
	ctx := newTestContext(t)

	for i := range 5 {
		ctx.Policy.AuditLog("shell", fmt.Sprintf("cmd-%d", i))
	}

	result := run(t, ctx, "audit_log_read", `{"n":2}`)
	if !result.Success {
		t.Fatalf("result = %+v", result)
	}
	// The call audits itself before reading, so the 2 returned lines are
	// cmd-4 and this call's own entry.
	if !strings.Contains(result.Output, "cmd-4") || strings.Contains(result.Output, "cmd-2") {
		t.Errorf("output = %q", result.Output)
	}
}

func TestManifestListsTools(t *testing.T) {
	r := NewRegistry()
	r.RegisterCore()

	manifest := r.Manifest()
	for _, name := range []string{"shell", "file_read", "memory_store", "git_operations", "web_fetch"} {
		if !strings.Contains(manifest, "- "+name+": ") {
			t.Errorf("manifest missing %s", name)
		}
	}
}

func TestFindFirstMatchWins(t *testing.T) {
	r := NewRegistry()
	r.Register(Tool{Name: "dup", Description: "first"})
	r.Register(Tool{Name: "dup", Description: "second"})

	if got := r.Find("dup").Description; got != "first" {
		t.Errorf("Find returned %q", got)
	}

	if r.Find("missing") != nil {
		t.Error("missing tool should be nil")
	}
}

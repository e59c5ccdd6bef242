package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AuditLog appends one TAB-separated record per tool invocation to
// <workspace>/audit.log. Entries are written before the tool executes, so the
// log reflects dispatch order. Best-effort: a write failure never aborts the
// tool call.
func (p *Policy) AuditLog(toolName, detail string) {
	path := filepath.Join(p.WorkspaceDir, "audit.log")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	detail = strings.ReplaceAll(detail, "\n", " ")
	fmt.Fprintf(f, "%d\t%s\t%s\n", time.Now().Unix(), toolName, detail)
}

// AuditTail returns the last n lines of the audit log, or a placeholder when
// the log does not exist yet.
func (p *Policy) AuditTail(n int) string {
	data, err := os.ReadFile(filepath.Join(p.WorkspaceDir, "audit.log"))
	if err != nil {
		return "(no audit log yet)"
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

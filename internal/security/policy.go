// Package security holds the path/shell policy every tool call traverses and
// the append-only audit trail. The policy is defense in depth, not a sandbox:
// it blocks the obvious destructive patterns while leaving the model a usable
// shell inside the workspace.
package security

import (
	"strings"
)

var forbiddenPrefixes = []string{
	"/etc/", "/root/", "/usr/", "/proc/", "/sys/", "/dev/",
}

var sensitiveSubstrings = []string{
	"/.ssh", "/.gnupg", "/.aws", "/.bareclaw/secrets",
}

var blockedShellPatterns = []string{
	"rm ", "rm\t", "/bin/rm", "/usr/bin/rm", "unlink ", "rmdir ", "shred ", "dd ",
	"> /", "mkfs", "fdisk", "parted", ":(){",
}

// Policy scopes all file access to a single workspace directory. Immutable for
// the process lifetime; WorkspaceDir must be absolute and exist.
type Policy struct {
	WorkspaceDir string
}

func NewPolicy(workspaceDir string) *Policy {
	return &Policy{WorkspaceDir: workspaceDir}
}

// AllowPath reports whether a tool may touch path. Relative paths are accepted
// and resolved against the workspace by the caller; absolute paths must live
// under the workspace.
func (p *Policy) AllowPath(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return false
		}
	}

	for _, prefix := range forbiddenPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	for _, sub := range sensitiveSubstrings {
		if strings.Contains(path, sub) {
			return false
		}
	}

	if strings.HasPrefix(path, "/") {
		return strings.HasPrefix(path, p.WorkspaceDir)
	}
	return true
}

// AllowShellCommand reports whether a shell command line may run. Substring
// matches are suppressed when the command also contains "echo", so the model
// can still print literal text about blocked patterns.
func (p *Policy) AllowShellCommand(cmd string) bool {
	trimmed := strings.TrimLeft(cmd, " \t")
	hasEcho := strings.Contains(trimmed, "echo")

	for _, pattern := range blockedShellPatterns {
		if strings.HasPrefix(trimmed, pattern) {
			return false
		}
		if strings.Contains(trimmed, pattern) && !hasEcho {
			return false
		}
	}
	return true
}

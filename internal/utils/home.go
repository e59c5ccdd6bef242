package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// BareClawDir returns ~/.bareclaw, creating it on first use.
func BareClawDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("os.UserHomeDir: %w", err)
	}

	dir := filepath.Join(home, ".bareclaw")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll: %w", err)
	}
	return dir, nil
}

// WorkspaceDir returns ~/.bareclaw/workspace, the security boundary for all
// file and memory operations, creating it on first use.
func WorkspaceDir() (string, error) {
	base, err := BareClawDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, "workspace")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll: %w", err)
	}
	return dir, nil
}

// Package memory is the persistent key/value backend: one markdown file per
// key under <workspace>/memory, nested keys mapping to nested directories.
package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	dir string
}

// NewStore returns a store rooted at <workspace>/memory. Nothing is created
// until the first write.
func NewStore(workspaceDir string) *Store {
	return &Store{dir: filepath.Join(workspaceDir, "memory")}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".md")
}

// Store writes content under key, creating parent directories for nested keys
// like "cron/t1/1700000000". Existing entries are truncated.
func (s *Store) Store(key, content string) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}
	return nil
}

// Recall returns the exact entry when key exists, otherwise every entry whose
// name contains key as a substring, separated by "\n---\n" and each prefixed
// with its key (the path under the memory directory, without ".md") and ":\n".
func (s *Store) Recall(key string) (string, error) {
	if data, err := os.ReadFile(s.path(key)); err == nil {
		return string(data), nil
	}

	entries, err := s.walk()
	if err != nil {
		return "(no memory yet)", nil
	}

	var parts []string
	for _, rel := range entries {
		if !strings.Contains(rel, key) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, rel+".md"))
		if err != nil {
			continue
		}
		parts = append(parts, rel+":\n"+string(data))
	}
	if len(parts) == 0 {
		return "(no matching memory found)", nil
	}
	return strings.Join(parts, "\n---\n"), nil
}

// Forget deletes the entry for key. Deleting a missing key is a no-op.
func (s *Store) Forget(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove: %w", err)
	}
	return nil
}

// ListKeys returns all key stems newline-separated.
func (s *Store) ListKeys() string {
	entries, err := s.walk()
	if err != nil || len(entries) == 0 {
		return "(no memory entries)"
	}
	return strings.Join(entries, "\n")
}

// DeletePrefix removes every entry whose stem starts with prefix and returns
// how many were removed.
func (s *Store) DeletePrefix(prefix string) (int, error) {
	entries, err := s.walk()
	if err != nil {
		return 0, nil
	}

	count := 0
	for _, rel := range entries {
		if !strings.HasPrefix(rel, prefix) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, rel+".md")); err != nil {
			return count, fmt.Errorf("os.Remove: %w", err)
		}
		count++
	}
	return count, nil
}

// Count returns the number of entries.
func (s *Store) Count() int {
	entries, err := s.walk()
	if err != nil {
		return 0
	}
	return len(entries)
}

// walk collects relative key stems (path without the .md suffix) in sorted
// filepath.WalkDir order.
func (s *Store) walk() ([]string, error) {
	if _, err := os.Stat(s.dir); err != nil {
		return nil, err
	}

	var keys []string
	err := filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return err
		}
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		keys = append(keys, strings.TrimSuffix(rel, ".md"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filepath.WalkDir: %w", err)
	}
	return keys, nil
}

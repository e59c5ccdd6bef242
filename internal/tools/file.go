package tools

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const maxFileReadBytes = 4 << 20

func fileReadTool() Tool {
	return Tool{
		Name:        "file_read",
		Description: "Read a file from the workspace",
		Execute:     execFileRead,
	}
}

func fileWriteTool() Tool {
	return Tool{
		Name:        "file_write",
		Description: "Write content to a file in the workspace, creating parent directories",
		Execute:     execFileWrite,
	}
}

// resolvePath turns a policy-approved path into an absolute one, resolving
// relative paths against the workspace.
func resolvePath(ctx *Context, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ctx.Policy.WorkspaceDir, path)
}

func execFileRead(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	ctx.Policy.AuditLog("file_read", params.Path)

	if !ctx.Policy.AllowPath(params.Path) {
		return Result{Success: false, Output: "file_read: path outside workspace is not allowed"}, nil
	}

	f, err := os.Open(resolvePath(ctx, params.Path))
	if err != nil {
		return Result{Success: false, Output: fmt.Sprintf("file_read: %v", err)}, nil
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxFileReadBytes))
	if err != nil {
		return Result{Success: false, Output: fmt.Sprintf("file_read: %v", err)}, nil
	}
	return Result{Success: true, Output: ctx.Cap(string(data))}, nil
}

func execFileWrite(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		Path    string `json:"path"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	ctx.Policy.AuditLog("file_write", params.Path)

	if !ctx.Policy.AllowPath(params.Path) {
		return Result{Success: false, Output: "file_write: path outside workspace is not allowed"}, nil
	}

	target := resolvePath(ctx, params.Path)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return Result{Success: false, Output: fmt.Sprintf("file_write: %v", err)}, nil
	}
	if err := os.WriteFile(target, []byte(params.Content), 0644); err != nil {
		return Result{Success: false, Output: fmt.Sprintf("file_write: %v", err)}, nil
	}
	return Result{
		Success: true,
		Output:  fmt.Sprintf("wrote %d bytes to %s", len(params.Content), params.Path),
	}, nil
}

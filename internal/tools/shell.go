package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

func shellTool() Tool {
	return Tool{
		Name:        "shell",
		Description: "Run a shell command inside the workspace and return its output",
		Execute:     execShell,
	}
}

func execShell(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	ctx.Policy.AuditLog("shell", params.Command)

	if params.Command == "" {
		return Result{Success: false, Output: "shell: command is empty"}, nil
	}
	if !ctx.Policy.AllowShellCommand(params.Command) {
		return Result{Success: false, Output: "shell: command blocked by policy"}, nil
	}

	cmd := exec.Command("/bin/sh", "-c", params.Command)
	cmd.Dir = ctx.Policy.WorkspaceDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	output := stdout.String()
	if strings.TrimSpace(output) == "" {
		output = stderr.String()
	}

	if runErr != nil {
		if output == "" {
			output = runErr.Error()
		}
		return Result{Success: false, Output: ctx.Cap(output)}, nil
	}
	return Result{Success: true, Output: ctx.Cap(output)}, nil
}

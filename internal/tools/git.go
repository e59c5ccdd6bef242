package tools

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

var allowedGitOps = map[string]bool{
	"status": true, "log": true, "diff": true, "add": true, "commit": true,
	"push": true, "pull": true, "clone": true, "init": true, "branch": true,
	"checkout": true, "fetch": true, "stash": true,
}

func gitTool() Tool {
	return Tool{
		Name:        "git_operations",
		Description: "Run an allowlisted git operation in the workspace",
		Execute:     execGit,
	}
}

// gitArgv builds the exact argv to spawn. args is split on single spaces with
// no shell involved, so metacharacters in it are inert tokens git itself will
// reject.
func gitArgv(op, path, args string) []string {
	argv := []string{"git", "-C", path, op}
	for _, tok := range strings.Split(args, " ") {
		if tok != "" {
			argv = append(argv, tok)
		}
	}
	return argv
}

func execGit(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		Op   string `json:"op"`
		Path string `json:"path"`
		Args string `json:"args"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}
	if params.Path == "" {
		params.Path = "."
	}

	ctx.Policy.AuditLog("git_operations", params.Op+" "+params.Path)

	if !allowedGitOps[params.Op] {
		return Result{Success: false, Output: fmt.Sprintf("git_operations: op %q is not allowed", params.Op)}, nil
	}
	if !ctx.Policy.AllowPath(params.Path) {
		return Result{Success: false, Output: "git_operations: path outside workspace is not allowed"}, nil
	}

	argv := gitArgv(params.Op, params.Path, params.Args)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = ctx.Policy.WorkspaceDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		text := string(output)
		if strings.TrimSpace(text) == "" {
			text = err.Error()
		}
		return Result{Success: false, Output: ctx.Cap(text)}, nil
	}
	return Result{Success: true, Output: ctx.Cap(string(output))}, nil
}

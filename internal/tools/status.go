package tools

import (
	"encoding/json"
	"fmt"
)

func statusTool() Tool {
	return Tool{
		Name:        "agent_status",
		Description: "Report workspace, memory, and policy status",
		Execute:     execStatus,
	}
}

func auditReadTool() Tool {
	return Tool{
		Name:        "audit_log_read",
		Description: "Return the most recent audit log entries",
		Execute:     execAuditRead,
	}
}

func execStatus(ctx *Context, _ json.RawMessage) (Result, error) {
	ctx.Policy.AuditLog("agent_status", "")

	out := fmt.Sprintf(
		"workspace: %s\nmemory entries: %d\nprovider: %s\ntools registered: %d\npolicy: workspace-scoped paths, destructive shell commands blocked",
		ctx.Policy.WorkspaceDir, ctx.Memory.Count(), ctx.ProviderName, ctx.ToolCount,
	)
	return Result{Success: true, Output: out}, nil
}

func execAuditRead(ctx *Context, args json.RawMessage) (Result, error) {
	var params struct {
		N int `json:"n"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Result{}, fmt.Errorf("json.Unmarshal: %w", err)
	}
	if params.N <= 0 {
		params.N = 50
	}

	ctx.Policy.AuditLog("audit_log_read", fmt.Sprintf("n=%d", params.N))
	return Result{Success: true, Output: ctx.Cap(ctx.Policy.AuditTail(params.N))}, nil
}

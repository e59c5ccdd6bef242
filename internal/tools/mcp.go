package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Jaruso/bareclaw/internal/config"
	"github.com/Jaruso/bareclaw/internal/mcp"
)

// RegisterMCPServers probes each configured capability server, asks it for
// its tool list, and registers one proxied tool per entry under the name
// "<server>__<tool>". A server that fails to start or answer is skipped; its
// tools simply do not appear.
func (r *Registry) RegisterMCPServers(servers []config.MCPServer) {
	for _, server := range servers {
		probe, err := mcp.StartProbe(server.Argv)
		if err != nil {
			slog.Warn("mcp server unavailable",
				slog.String("name", server.Name),
				slog.String("error", err.Error()))
			continue
		}

		remote := probe.ListTools()
		probe.Close()

		for _, t := range remote {
			r.Register(Tool{
				Name:        server.Name + "__" + t.Name,
				Description: t.Description,
				Execute:     execMCPProxy,
				Meta: &McpProxyMeta{
					Argv:       server.Argv,
					RemoteName: t.Name,
				},
			})
		}
		slog.Info("mcp server registered",
			slog.String("name", server.Name),
			slog.Int("tools", len(remote)))
	}
}

// execMCPProxy forwards a call to the remote tool named by the dispatcher's
// CurrentMeta, reusing the pool session for the server's argv.
func execMCPProxy(ctx *Context, args json.RawMessage) (Result, error) {
	meta := ctx.CurrentMeta
	if meta == nil {
		return Result{}, fmt.Errorf("mcp proxy: no tool metadata")
	}

	ctx.Policy.AuditLog("mcp_tool", meta.RemoteName)

	if ctx.Pool == nil {
		return Result{Success: false, Output: "mcp proxy: no session pool"}, nil
	}

	session, err := ctx.Pool.GetOrStart(meta.Argv)
	if err != nil {
		return Result{}, fmt.Errorf("pool.GetOrStart: %w", err)
	}

	out, err := session.CallTool(meta.RemoteName, string(args))
	if err != nil {
		return Result{}, fmt.Errorf("session.CallTool: %w", err)
	}
	return Result{Success: true, Output: ctx.Cap(out)}, nil
}

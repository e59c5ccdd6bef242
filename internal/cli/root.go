// Package cli implements the bareclaw CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Jaruso/bareclaw/internal/agent"
	"github.com/Jaruso/bareclaw/internal/config"
	"github.com/Jaruso/bareclaw/internal/mcp"
	"github.com/Jaruso/bareclaw/internal/memory"
	"github.com/Jaruso/bareclaw/internal/provider"
	"github.com/Jaruso/bareclaw/internal/security"
	"github.com/Jaruso/bareclaw/internal/tools"
	"github.com/Jaruso/bareclaw/internal/utils"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "bareclaw",
	Short: "Self-hosted runtime for tool-using LLM agents",
	Long:  "BareClaw drives a tool-calling conversation with a model backend over a REPL, Discord, Telegram, or a cron schedule, with file/shell/memory capabilities scoped to a local workspace.",
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// stack is everything one channel needs for agent turns. Close releases the
// capability sessions.
type stack struct {
	Config *config.Config
	Agent  *agent.Agent
	Pool   *mcp.Pool
}

func (s *stack) Close() {
	s.Pool.Close()
}

func buildStack() (*stack, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	ws, err := utils.WorkspaceDir()
	if err != nil {
		return nil, err
	}

	policy := security.NewPolicy(ws)
	mem := memory.NewStore(ws)
	pool := mcp.NewPool()

	registry := tools.NewRegistry()
	registry.RegisterCore()
	registry.RegisterMCPServers(cfg.MCPServers)

	router := provider.FromConfig(cfg)
	toolCtx := tools.NewContext(policy, mem, pool)

	return &stack{
		Config: cfg,
		Agent:  agent.New(router, cfg.DefaultModel, mem, registry, toolCtx),
		Pool:   pool,
	}, nil
}

func cronPath() string {
	dir, err := utils.BareClawDir()
	if err != nil {
		exitErr("resolve ~/.bareclaw", err)
	}
	return filepath.Join(dir, "cron.tsv")
}

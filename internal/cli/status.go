package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jaruso/bareclaw/internal/cron"
	"github.com/Jaruso/bareclaw/internal/onboard"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "onboard",
		Short: "First-run setup wizard",
		Run: func(cmd *cobra.Command, args []string) {
			if err := onboard.Run(); err != nil {
				exitErr("onboard", err)
			}
		},
	})

	RootCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show configuration and runtime summary",
		Run:   runStatus,
	})
}

func runStatus(cmd *cobra.Command, args []string) {
	s, err := buildStack()
	if err != nil {
		exitErr("build stack", err)
	}
	defer s.Close()

	chain := s.Config.ProviderChain()
	tasks, _ := cron.LoadTasks(cronPath())

	fmt.Printf("provider chain: %s\n", strings.Join(chain, " -> "))
	fmt.Printf("model:          %s\n", s.Config.DefaultModel)
	fmt.Printf("workspace:      %s\n", s.Agent.ToolCtx.Policy.WorkspaceDir)
	fmt.Printf("memory entries: %d\n", s.Agent.Memory.Count())
	fmt.Printf("tools:          %d\n", s.Agent.Registry.Len())
	fmt.Printf("mcp servers:    %d\n", len(s.Config.MCPServers))
	fmt.Printf("cron tasks:     %d\n", len(tasks))
}

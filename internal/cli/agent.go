package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "agent <message...>",
		Short: "Run one agent turn and print the answer",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAgent,
	}
	RootCmd.AddCommand(cmd)
}

func runAgent(cmd *cobra.Command, args []string) {
	s, err := buildStack()
	if err != nil {
		exitErr("build stack", err)
	}
	defer s.Close()

	if err := s.Agent.Run(context.Background(), strings.Join(args, " "), os.Stdout); err != nil {
		exitErr("agent turn", err)
	}
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jaruso/bareclaw/internal/cron"
)

func init() {
	cronCmd := &cobra.Command{
		Use:   "cron",
		Short: "Manage and run scheduled tasks",
	}

	cronCmd.AddCommand(&cobra.Command{
		Use:   "add <schedule> <command...>",
		Short: "Add a shell task (schedule in quotes, e.g. \"0 9 * * *\")",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			r := newRunner(nil)
			task, err := r.Add(args[0], strings.Join(args[1:], " "))
			if err != nil {
				exitErr("cron add", err)
			}
			fmt.Printf("added %s (%s)\n", task.ID, task.Schedule)
		},
	})

	cronCmd.AddCommand(&cobra.Command{
		Use:   "add-prompt <schedule> <prompt...>",
		Short: "Add a task that runs a full agent prompt",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			r := newRunner(nil)
			task, err := r.AddPrompt(args[0], strings.Join(args[1:], " "))
			if err != nil {
				exitErr("cron add-prompt", err)
			}
			fmt.Printf("added %s (%s)\n", task.ID, task.Schedule)
		},
	})

	cronCmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := newRunner(nil).Remove(args[0]); err != nil {
				exitErr("cron remove", err)
			}
		},
	})

	cronCmd.AddCommand(&cobra.Command{
		Use:   "pause <id>",
		Short: "Disable a task without removing it",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := newRunner(nil).Pause(args[0]); err != nil {
				exitErr("cron pause", err)
			}
		},
	})

	cronCmd.AddCommand(&cobra.Command{
		Use:   "resume <id>",
		Short: "Re-enable a paused task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := newRunner(nil).Resume(args[0]); err != nil {
				exitErr("cron resume", err)
			}
		},
	})

	cronCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Run: func(cmd *cobra.Command, args []string) {
			tasks, err := newRunner(nil).List()
			if err != nil {
				exitErr("cron list", err)
			}
			fmt.Println(cron.FormatList(tasks))
		},
	})

	cronCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Execute every task that is due",
		Run: func(cmd *cobra.Command, args []string) {
			s, err := buildStack()
			if err != nil {
				exitErr("build stack", err)
			}
			defer s.Close()

			r := newRunner(s)
			ran, err := r.RunDue(context.Background())
			if err != nil {
				exitErr("cron run", err)
			}
			fmt.Printf("ran %d task(s)\n", ran)
		},
	})

	RootCmd.AddCommand(cronCmd)
}

// newRunner wires the cron runner; with a stack, prompt tasks run full
// captured agent turns and their results land in memory.
func newRunner(s *stack) *cron.Runner {
	r := &cron.Runner{Path: cronPath(), Out: os.Stdout}
	if s != nil {
		r.Memory = s.Agent.Memory
		r.RunPrompt = func(ctx context.Context, prompt string) (string, error) {
			return s.Agent.RunCaptured(ctx, prompt)
		}
	}
	return r
}

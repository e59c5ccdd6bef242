package cron

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/Jaruso/bareclaw/internal/memory"
)

// Runner executes due tasks and manages the task file. Prompt tasks run
// through RunPrompt (a full captured agent turn wired in by the caller);
// shell tasks spawn /bin/sh. Concurrent cron invocations may lose updates —
// the file is read-modify-write by design of the format.
type Runner struct {
	Path      string
	Out       io.Writer
	Memory    *memory.Store
	RunPrompt func(ctx context.Context, prompt string) (string, error)
}

func (r *Runner) now() int64 {
	return time.Now().Unix()
}

// Add creates a shell task.
func (r *Runner) Add(schedule, command string) (Task, error) {
	return r.add(schedule, command, "")
}

// AddPrompt creates a prompt task; its command slot holds "-".
func (r *Runner) AddPrompt(schedule, prompt string) (Task, error) {
	return r.add(schedule, "-", prompt)
}

func (r *Runner) add(schedule, command, prompt string) (Task, error) {
	expr, err := Parse(schedule)
	if err != nil {
		return Task{}, err
	}

	tasks, err := LoadTasks(r.Path)
	if err != nil {
		return Task{}, err
	}

	task := Task{
		ID:       NextID(tasks),
		Schedule: expr.String(),
		Command:  command,
		Enabled:  true,
		NextRun:  expr.NextAfter(r.now()),
		Prompt:   prompt,
	}
	tasks = append(tasks, task)
	if err := SaveTasks(r.Path, tasks); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (r *Runner) Remove(id string) error {
	return r.update(id, func(tasks []Task, i int) []Task {
		return append(tasks[:i], tasks[i+1:]...)
	})
}

func (r *Runner) Pause(id string) error {
	return r.update(id, func(tasks []Task, i int) []Task {
		tasks[i].Enabled = false
		return tasks
	})
}

// Resume re-enables a task, recomputing its next fire time when it was due
// immediately.
func (r *Runner) Resume(id string) error {
	return r.update(id, func(tasks []Task, i int) []Task {
		tasks[i].Enabled = true
		if tasks[i].NextRun == 0 {
			if expr, err := Parse(tasks[i].Schedule); err == nil {
				tasks[i].NextRun = expr.NextAfter(r.now())
			}
		}
		return tasks
	})
}

func (r *Runner) update(id string, apply func([]Task, int) []Task) error {
	tasks, err := LoadTasks(r.Path)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return SaveTasks(r.Path, apply(tasks, i))
		}
	}
	return fmt.Errorf("cron: no task %q", id)
}

func (r *Runner) List() ([]Task, error) {
	return LoadTasks(r.Path)
}

// FormatList renders tasks in aligned columns for the CLI.
func FormatList(tasks []Task) string {
	if len(tasks) == 0 {
		return "(no cron tasks)"
	}

	var sb strings.Builder
	for _, t := range tasks {
		state := "on"
		if !t.Enabled {
			state = "off"
		}
		next := "now"
		if t.NextRun > 0 {
			next = time.Unix(t.NextRun, 0).UTC().Format(time.RFC3339)
		}
		what := t.Command
		if t.IsPrompt() {
			what = "prompt: " + t.Prompt
		}
		fmt.Fprintf(&sb, "%-5s %-4s %-15s %-21s %s\n", t.ID, state, t.Schedule, next, what)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RunDue executes every enabled task whose next fire time has arrived and
// reschedules it. Returns how many tasks ran.
func (r *Runner) RunDue(ctx context.Context) (int, error) {
	now := r.now()
	tasks, err := LoadTasks(r.Path)
	if err != nil {
		return 0, err
	}

	ran := 0
	for i := range tasks {
		task := &tasks[i]
		if !task.Enabled || (task.NextRun != 0 && now < task.NextRun) {
			continue
		}

		r.runTask(ctx, *task, now)
		ran++

		task.LastRun = now
		if expr, err := Parse(task.Schedule); err == nil {
			task.NextRun = expr.NextAfter(now)
		}
		if err := SaveTasks(r.Path, tasks); err != nil {
			return ran, err
		}
	}
	return ran, nil
}

func (r *Runner) runTask(ctx context.Context, task Task, now int64) {
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	if task.IsPrompt() {
		if r.RunPrompt == nil {
			slog.Error("prompt task with no agent wired", slog.String("id", task.ID))
			return
		}
		response, err := r.RunPrompt(ctx, task.Prompt)
		if err != nil {
			response = fmt.Sprintf("(task failed: %v)", err)
		}
		fmt.Fprint(out, response)

		if r.Memory != nil {
			key := fmt.Sprintf("cron/%s/%d", task.ID, now)
			entry := fmt.Sprintf("# Cron task %s\n- schedule: %s\n- prompt: %s\n\n%s",
				task.ID, task.Schedule, task.Prompt, strings.TrimRight(response, "\n"))
			if err := r.Memory.Store(key, entry); err != nil {
				slog.Warn("failed to store cron result", slog.String("error", err.Error()))
			}
		}
		return
	}

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", task.Command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Warn("cron shell task failed",
			slog.String("id", task.ID),
			slog.String("error", err.Error()))
	}
	if stdout.Len() > 0 {
		out.Write(stdout.Bytes())
	} else {
		out.Write(stderr.Bytes())
	}
}

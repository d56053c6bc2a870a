package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"htask/internal/config"
	"htask/internal/exitcode"
	"htask/internal/output"
	"htask/internal/service"
)

func init() {
	Register(&ListCmd{})
	Register(&StartedCmd{})
	Register(&AssignedCmd{})
	Register(&CompletedCmd{})
}

// ListCmd lists the caller's active tasks grouped by due status.
// Also handles `htask` with no arguments.
type ListCmd struct{}

func (c *ListCmd) Name() string                   { return "list" }
func (c *ListCmd) Aliases() []string              { return []string{"active"} }
func (c *ListCmd) Synopsis() string               { return "List active tasks by due status" }
func (c *ListCmd) Usage() string                  { return "htask list" }
func (c *ListCmd) NeedsAuth() bool                { return true }
func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	g, err := svc.Active(ctx)
	if err != nil {
		return writeError(errOut, err)
	}
	return renderByDue(cfg, g, out)
}

// StartedCmd lists the caller's started tasks grouped by due status.
type StartedCmd struct{}

func (c *StartedCmd) Name() string                   { return "started" }
func (c *StartedCmd) Aliases() []string              { return nil }
func (c *StartedCmd) Synopsis() string               { return "List started tasks by due status" }
func (c *StartedCmd) Usage() string                  { return "htask started" }
func (c *StartedCmd) NeedsAuth() bool                { return true }
func (c *StartedCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StartedCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	g, err := svc.Started(ctx)
	if err != nil {
		return writeError(errOut, err)
	}
	return renderByDue(cfg, g, out)
}

// AssignedCmd lists the tasks the caller has assigned to other users.
type AssignedCmd struct {
	completed bool
}

func (c *AssignedCmd) Name() string      { return "assigned" }
func (c *AssignedCmd) Aliases() []string { return nil }
func (c *AssignedCmd) Synopsis() string  { return "List tasks assigned to others" }
func (c *AssignedCmd) Usage() string     { return "htask assigned [--completed]" }
func (c *AssignedCmd) NeedsAuth() bool   { return true }

func (c *AssignedCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.completed, "completed", false, "")
}

func (c *AssignedCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.completed {
		tasks, err := svc.AssignedCompleted(ctx)
		if err != nil {
			return writeError(errOut, err)
		}
		return renderFlat(cfg, tasks, out)
	}

	g, err := svc.AssignedActive(ctx)
	if err != nil {
		return writeError(errOut, err)
	}
	return renderByDue(cfg, g, out)
}

// CompletedCmd lists the caller's completed tasks, most recent first.
type CompletedCmd struct{}

func (c *CompletedCmd) Name() string                   { return "completed" }
func (c *CompletedCmd) Aliases() []string              { return nil }
func (c *CompletedCmd) Synopsis() string               { return "List completed tasks" }
func (c *CompletedCmd) Usage() string                  { return "htask completed" }
func (c *CompletedCmd) NeedsAuth() bool                { return true }
func (c *CompletedCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CompletedCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	tasks, err := svc.Completed(ctx)
	if err != nil {
		return writeError(errOut, err)
	}
	return renderFlat(cfg, tasks, out)
}

func renderByDue(cfg *config.Config, g service.TasksByDue, out io.Writer) int {
	if g.Empty() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}
	output.FormatByDue(out, g)
	return exitcode.Success
}

func renderFlat(cfg *config.Config, tasks []service.Task, out io.Writer) int {
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}
	output.FormatFlat(out, tasks)
	return exitcode.Success
}

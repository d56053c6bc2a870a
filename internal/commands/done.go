package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"htask/internal/config"
	"htask/internal/exitcode"
	"htask/internal/service"
)

func init() {
	Register(&DoneCmd{})
	Register(&UndoneCmd{})
}

// DoneCmd marks a task completed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string                   { return "done" }
func (c *DoneCmd) Aliases() []string              { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string               { return "Mark a task completed" }
func (c *DoneCmd) Usage() string                  { return "htask done <task-id>" }
func (c *DoneCmd) NeedsAuth() bool                { return true }
func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runTaskCommand(ctx, cfg, svc.Complete, args, out, errOut)
}

// UndoneCmd marks a completed task as no longer completed.
type UndoneCmd struct{}

func (c *UndoneCmd) Name() string                   { return "undone" }
func (c *UndoneCmd) Aliases() []string              { return []string{"incomplete"} }
func (c *UndoneCmd) Synopsis() string               { return "Mark a completed task incomplete" }
func (c *UndoneCmd) Usage() string                  { return "htask undone <task-id>" }
func (c *UndoneCmd) NeedsAuth() bool                { return true }
func (c *UndoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runTaskCommand(ctx, cfg, svc.Incomplete, args, out, errOut)
}

// runTaskCommand is the shared implementation for single-id lifecycle
// commands (done, undone, start, stop).
func runTaskCommand(ctx context.Context, cfg *config.Config, op func(context.Context, int64) error, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	id, err := parseID(args[0], "task id")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := op(ctx, id); err != nil {
		return writeError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

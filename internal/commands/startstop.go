package commands

import (
	"context"
	"flag"
	"io"

	"htask/internal/config"
	"htask/internal/service"
)

func init() {
	Register(&StartCmd{})
	Register(&StopCmd{})
}

// StartCmd indicates that work has started on a task.
type StartCmd struct{}

func (c *StartCmd) Name() string                   { return "start" }
func (c *StartCmd) Aliases() []string              { return nil }
func (c *StartCmd) Synopsis() string               { return "Mark a task started" }
func (c *StartCmd) Usage() string                  { return "htask start <task-id>" }
func (c *StartCmd) NeedsAuth() bool                { return true }
func (c *StartCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StartCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runTaskCommand(ctx, cfg, svc.Start, args, out, errOut)
}

// StopCmd indicates that work has stopped on a task.
type StopCmd struct{}

func (c *StopCmd) Name() string                   { return "stop" }
func (c *StopCmd) Aliases() []string              { return nil }
func (c *StopCmd) Synopsis() string               { return "Mark a task stopped" }
func (c *StopCmd) Usage() string                  { return "htask stop <task-id>" }
func (c *StopCmd) NeedsAuth() bool                { return true }
func (c *StopCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StopCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runTaskCommand(ctx, cfg, svc.Stop, args, out, errOut)
}

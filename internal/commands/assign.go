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
	Register(&AssignCmd{})
}

// AssignCmd reassigns a task to another user.
type AssignCmd struct{}

func (c *AssignCmd) Name() string                   { return "assign" }
func (c *AssignCmd) Aliases() []string              { return nil }
func (c *AssignCmd) Synopsis() string               { return "Assign a task to a user" }
func (c *AssignCmd) Usage() string                  { return "htask assign <task-id> <user-id>" }
func (c *AssignCmd) NeedsAuth() bool                { return true }
func (c *AssignCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AssignCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: task id and user id required")
		return exitcode.UserError
	}
	taskID, err := parseID(args[0], "task id")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	userID, err := parseID(args[1], "user id")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := svc.Assign(ctx, taskID, userID); err != nil {
		return writeError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

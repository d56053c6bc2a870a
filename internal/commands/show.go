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
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct{}

func (c *ShowCmd) Name() string                   { return "show" }
func (c *ShowCmd) Aliases() []string              { return []string{"get"} }
func (c *ShowCmd) Synopsis() string               { return "Show a task" }
func (c *ShowCmd) Usage() string                  { return "htask show <task-id>" }
func (c *ShowCmd) NeedsAuth() bool                { return true }
func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	id, err := parseID(args[0], "task id")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	task, err := svc.Get(ctx, id)
	if err != nil {
		return writeError(errOut, err)
	}

	output.FormatDetail(out, task)
	return exitcode.Success
}

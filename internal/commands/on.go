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
	Register(&OnCmd{})
}

// OnCmd lists the tasks attached to a referenced entity, both active and
// completed.
type OnCmd struct{}

func (c *OnCmd) Name() string                   { return "on" }
func (c *OnCmd) Aliases() []string              { return nil }
func (c *OnCmd) Synopsis() string               { return "List tasks attached to an entity" }
func (c *OnCmd) Usage() string                  { return "htask on <type> <id>" }
func (c *OnCmd) NeedsAuth() bool                { return true }
func (c *OnCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *OnCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: reference type and id required")
		return exitcode.UserError
	}
	ref, err := parseRef(args[0] + "/" + args[1])
	if err != nil {
		return writeError(errOut, err)
	}

	tasks, err := svc.ListByReference(ctx, ref)
	if err != nil {
		return writeError(errOut, err)
	}
	return renderFlat(cfg, tasks, out)
}

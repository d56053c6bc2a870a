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
	Register(&SpaceCmd{})
}

// SpaceCmd lists all tasks related to a space, grouped by due status or by
// responsible user.
type SpaceCmd struct {
	by string
}

func (c *SpaceCmd) Name() string      { return "space" }
func (c *SpaceCmd) Aliases() []string { return nil }
func (c *SpaceCmd) Synopsis() string  { return "List tasks in a space" }
func (c *SpaceCmd) Usage() string     { return "htask space [--by due|responsible] <space-id>" }
func (c *SpaceCmd) NeedsAuth() bool   { return true }

func (c *SpaceCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.by, "by", "due", "")
}

func (c *SpaceCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: space id required")
		return exitcode.UserError
	}
	spaceID, err := parseID(args[0], "space id")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	switch c.by {
	case "due":
		g, err := svc.InSpaceByDue(ctx, spaceID)
		if err != nil {
			return writeError(errOut, err)
		}
		return renderByDue(cfg, g, out)
	case "responsible":
		groups, err := svc.InSpaceByResponsible(ctx, spaceID)
		if err != nil {
			return writeError(errOut, err)
		}
		if len(groups) == 0 {
			if !cfg.Quiet {
				fmt.Fprintln(out, "no tasks found")
			}
			return exitcode.Success
		}
		output.FormatResponsible(out, groups)
		return exitcode.Success
	default:
		fmt.Fprintf(errOut, "error: invalid grouping: %s\n", c.by)
		return exitcode.UserError
	}
}

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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string                   { return "help" }
func (c *HelpCmd) Aliases() []string              { return nil }
func (c *HelpCmd) Synopsis() string               { return "Show help" }
func (c *HelpCmd) Usage() string                  { return "htask help" }
func (c *HelpCmd) NeedsAuth() bool                { return false }
func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage: htask <command> [flags] [args]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-10s %s\n", cmd.Name(), cmd.Synopsis())
	}
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Common flags: --config <dir>, --quiet, --debug")
	return exitcode.Success
}

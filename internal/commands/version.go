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

// Version is the CLI version string.
const Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd implements the version command.
type VersionCmd struct{}

func (c *VersionCmd) Name() string                   { return "version" }
func (c *VersionCmd) Aliases() []string              { return nil }
func (c *VersionCmd) Synopsis() string               { return "Show version" }
func (c *VersionCmd) Usage() string                  { return "htask version" }
func (c *VersionCmd) NeedsAuth() bool                { return false }
func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "htask %s\n", Version)
	return exitcode.Success
}

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
	Register(&LogoutCmd{})
}

// LogoutCmd removes the stored session token.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string                   { return "logout" }
func (c *LogoutCmd) Aliases() []string              { return nil }
func (c *LogoutCmd) Synopsis() string               { return "Remove the stored session" }
func (c *LogoutCmd) Usage() string                  { return "htask logout" }
func (c *LogoutCmd) NeedsAuth() bool                { return false }
func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !cfg.HasToken() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "not logged in")
		}
		return exitcode.Success
	}
	if err := cfg.RemoveToken(); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
		return exitcode.AuthError
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

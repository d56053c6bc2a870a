package commands

import (
	"context"
	"flag"
	"io"

	"htask/internal/config"
	"htask/internal/exitcode"
	"htask/internal/output"
	"htask/internal/service"
)

func init() {
	Register(&TotalsCmd{})
}

// TotalsCmd shows aggregate task counts, optionally scoped to a space.
type TotalsCmd struct {
	space int64
}

func (c *TotalsCmd) Name() string      { return "totals" }
func (c *TotalsCmd) Aliases() []string { return nil }
func (c *TotalsCmd) Synopsis() string  { return "Show task totals" }
func (c *TotalsCmd) Usage() string     { return "htask totals [--space <space-id>]" }
func (c *TotalsCmd) NeedsAuth() bool   { return true }

func (c *TotalsCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.space, "space", 0, "")
}

func (c *TotalsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	var totals service.TaskTotals
	var err error
	if c.space > 0 {
		totals, err = svc.TotalsInSpace(ctx, c.space)
	} else {
		totals, err = svc.Totals(ctx)
	}
	if err != nil {
		return writeError(errOut, err)
	}

	output.FormatTotals(out, totals)
	return exitcode.Success
}

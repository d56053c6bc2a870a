package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"htask/internal/config"
	"htask/internal/exitcode"
	"htask/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	due         string
	private     bool
	responsible int64
	on          string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "htask add [--due <date>] [--private] [--responsible <user>] [--on <type/id>] <text...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.due, "due", "", "")
	fs.BoolVar(&c.private, "private", false, "")
	fs.Int64Var(&c.responsible, "responsible", 0, "")
	fs.StringVar(&c.on, "on", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	}

	create := service.TaskCreate{
		Text:        text,
		Private:     c.private,
		Responsible: c.responsible,
	}
	if c.due != "" {
		due, err := service.ParseDate(c.due)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		create.DueDate = &due
	}

	var id int64
	var err error
	if c.on != "" {
		ref, refErr := parseRef(c.on)
		if refErr != nil {
			return writeError(errOut, refErr)
		}
		id, err = svc.CreateWithReference(ctx, create, ref)
	} else {
		id, err = svc.Create(ctx, create)
	}
	if err != nil {
		return writeError(errOut, err)
	}

	fmt.Fprintf(out, "created task %d\n", id)
	return exitcode.Success
}

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
	Register(&DueCmd{})
	Register(&TextCmd{})
	Register(&PrivateCmd{})
}

// DueCmd updates or clears a task's due date.
type DueCmd struct{}

func (c *DueCmd) Name() string                   { return "due" }
func (c *DueCmd) Aliases() []string              { return nil }
func (c *DueCmd) Synopsis() string               { return "Update a task's due date" }
func (c *DueCmd) Usage() string                  { return "htask due <task-id> <date>|clear" }
func (c *DueCmd) NeedsAuth() bool                { return true }
func (c *DueCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DueCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: task id and date (or \"clear\") required")
		return exitcode.UserError
	}
	id, err := parseID(args[0], "task id")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	var due *service.Date
	if args[1] != "clear" {
		d, err := service.ParseDate(args[1])
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		due = &d
	}

	if err := svc.UpdateDueDate(ctx, id, due); err != nil {
		return writeError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// TextCmd updates a task's text.
type TextCmd struct{}

func (c *TextCmd) Name() string                   { return "text" }
func (c *TextCmd) Aliases() []string              { return nil }
func (c *TextCmd) Synopsis() string               { return "Update a task's text" }
func (c *TextCmd) Usage() string                  { return "htask text <task-id> <text...>" }
func (c *TextCmd) NeedsAuth() bool                { return true }
func (c *TextCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TextCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: task id and text required")
		return exitcode.UserError
	}
	id, err := parseID(args[0], "task id")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	text := strings.Join(args[1:], " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	}

	if err := svc.UpdateText(ctx, id, text); err != nil {
		return writeError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// PrivateCmd updates a task's private flag.
type PrivateCmd struct{}

func (c *PrivateCmd) Name() string                   { return "private" }
func (c *PrivateCmd) Aliases() []string              { return nil }
func (c *PrivateCmd) Synopsis() string               { return "Make a task private or public" }
func (c *PrivateCmd) Usage() string                  { return "htask private <task-id> on|off" }
func (c *PrivateCmd) NeedsAuth() bool                { return true }
func (c *PrivateCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PrivateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: task id and on|off required")
		return exitcode.UserError
	}
	id, err := parseID(args[0], "task id")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	var private bool
	switch args[1] {
	case "on":
		private = true
	case "off":
		private = false
	default:
		fmt.Fprintf(errOut, "error: expected on or off, got %q\n", args[1])
		return exitcode.UserError
	}

	if err := svc.UpdatePrivate(ctx, id, private); err != nil {
		return writeError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

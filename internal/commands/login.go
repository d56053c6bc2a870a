package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"htask/internal/backend/hoistapi"
	"htask/internal/config"
	"htask/internal/exitcode"
	"htask/internal/service"
)

// tokenExchangeTimeout bounds the credential exchange.
const tokenExchangeTimeout = 30 * time.Second

func init() {
	Register(&LoginCmd{})
}

// LoginCmd obtains and stores an API session token.
type LoginCmd struct {
	username string
	password string
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate with the task service" }
func (c *LoginCmd) Usage() string     { return "htask login --username <user> [--password <pass>]" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !cfg.HasClient() {
		fmt.Fprintf(errOut, "error: client.json not found in %s\n\n", cfg.Dir)
		fmt.Fprintln(errOut, "To authenticate you need API client credentials:")
		fmt.Fprintln(errOut, "")
		fmt.Fprintln(errOut, "1. Register an API client in your account settings")
		fmt.Fprintln(errOut, "2. Save the issued id and secret as:")
		fmt.Fprintf(errOut, "   %s\n", cfg.ClientPath())
		fmt.Fprintln(errOut, "   with the shape {\"client_id\": \"...\", \"client_secret\": \"...\"}")
		fmt.Fprintln(errOut, "")
		fmt.Fprintln(errOut, "Then run 'htask login' again.")
		return exitcode.AuthError
	}

	username := c.username
	if username == "" {
		username = os.Getenv("HOIST_USERNAME")
	}
	password := c.password
	if password == "" {
		password = os.Getenv("HOIST_PASSWORD")
	}
	if username == "" || password == "" {
		fmt.Fprintln(errOut, "error: username and password required (flags or HOIST_USERNAME/HOIST_PASSWORD)")
		return exitcode.UserError
	}

	creds, err := hoistapi.LoadClientCredentials(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, tokenExchangeTimeout)
	defer cancel()

	token, err := hoistapi.OAuthConfig(cfg, creds).PasswordCredentialsToken(exchangeCtx, username, password)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to obtain token: %v\n", err)
		return exitcode.AuthError
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := hoistapi.SaveToken(cfg.TokenPath(), token); err != nil {
		fmt.Fprintf(errOut, "error: failed to save token: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

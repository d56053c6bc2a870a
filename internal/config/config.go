// Package config handles the XDG configuration directory, credential file
// paths and client settings.
package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppName is the application directory name.
	AppName = "htask"

	// ClientFile holds the OAuth client id and secret.
	ClientFile = "client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// DefaultBaseURL is the API endpoint used unless overridden.
	DefaultBaseURL = "https://api.hoist.io"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the API base URL.
	BaseURL string

	// Timezone is the IANA zone name used when due-status buckets are
	// computed locally. Empty means UTC.
	Timezone string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the default or specified config directory.
// HOIST_URL and HOIST_TZ override the base URL and bucket timezone.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:      dir,
		BaseURL:  DefaultBaseURL,
		Timezone: os.Getenv("HOIST_TZ"),
	}
	if u := os.Getenv("HOIST_URL"); u != "" {
		cfg.BaseURL = u
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Location resolves the configured bucket timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ClientPath returns the path to the OAuth client credentials file.
func (c *Config) ClientPath() string {
	return filepath.Join(c.Dir, ClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasClient checks if the OAuth client credentials file exists.
func (c *Config) HasClient() bool {
	_, err := os.Stat(c.ClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

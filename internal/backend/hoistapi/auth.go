package hoistapi

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"htask/internal/config"
	"htask/internal/service"
	"htask/internal/transport"
)

// ClientCredentials is the shape of client.json.
type ClientCredentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// LoadClientCredentials reads the OAuth client id and secret from client.json.
// A missing or malformed file is an ErrUnauthorized so callers can classify it
// with errors.Is.
func LoadClientCredentials(cfg *config.Config) (ClientCredentials, error) {
	data, err := os.ReadFile(cfg.ClientPath())
	if err != nil {
		return ClientCredentials{}, fmt.Errorf("%w: failed to read client.json: %v", service.ErrUnauthorized, err)
	}
	var creds ClientCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return ClientCredentials{}, fmt.Errorf("%w: invalid client.json: %v", service.ErrUnauthorized, err)
	}
	if creds.ClientID == "" {
		return ClientCredentials{}, fmt.Errorf("%w: invalid client.json: missing client_id", service.ErrUnauthorized)
	}
	return creds, nil
}

// OAuthConfig builds the OAuth configuration for the API at the configured
// base URL.
func OAuthConfig(cfg *config.Config, creds ClientCredentials) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: cfg.BaseURL + "/oauth/token",
		},
	}
}

// LoadToken reads the stored OAuth token. A missing or malformed file is an
// ErrUnauthorized so callers can classify it with errors.Is.
func LoadToken(cfg *config.Config) (*oauth2.Token, error) {
	data, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read token.json: %v", service.ErrUnauthorized, err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: invalid token.json: %v", service.ErrUnauthorized, err)
	}
	return &token, nil
}

// SaveToken writes the OAuth token to the given path with mode 0600.
func SaveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// NewFromConfig creates a client from stored credentials. The token source
// refreshes expired tokens transparently.
func NewFromConfig(ctx context.Context, cfg *config.Config) (*Client, error) {
	creds, err := LoadClientCredentials(cfg)
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg)
	if err != nil {
		return nil, err
	}

	src := OAuthConfig(cfg, creds).TokenSource(ctx, token)

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	log := zap.NewNop()
	if cfg.Debug {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}

	t, err := transport.NewHTTP(cfg.BaseURL, src,
		transport.WithLogger(log),
		transport.WithTimezone(loc))
	if err != nil {
		return nil, err
	}
	return New(t), nil
}

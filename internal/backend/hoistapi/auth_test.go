package hoistapi

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htask/internal/config"
	"htask/internal/service"
)

func writeCredentials(t *testing.T, dir string) {
	t.Helper()
	client := []byte(`{"client_id":"id","client_secret":"secret"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ClientFile), client, 0600))
	token := []byte(`{"access_token":"tok","token_type":"Bearer"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.TokenFile), token, 0600))
}

func TestNewFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeCredentials(t, dir)
	cfg := &config.Config{Dir: dir, BaseURL: "https://api.example.com", Timezone: "UTC"}

	c, err := NewFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewFromConfigRejectsBadTimezone(t *testing.T) {
	dir := t.TempDir()
	writeCredentials(t, dir)
	cfg := &config.Config{Dir: dir, BaseURL: "https://api.example.com", Timezone: "Not/AZone"}

	_, err := NewFromConfig(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not/AZone")
}

func TestLoadClientCredentialsMissingIsUnauthorized(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	_, err := LoadClientCredentials(cfg)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestLoadClientCredentialsRequiresClientID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ClientFile), []byte(`{}`), 0600))

	_, err := LoadClientCredentials(&config.Config{Dir: dir})
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestLoadTokenMissingIsUnauthorized(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	_, err := LoadToken(cfg)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

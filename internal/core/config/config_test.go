package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "SERVER_PORT", "TIMEZONE",
	"SERVER_READ_TIMEOUT_SECONDS", "SERVER_WRITE_TIMEOUT_SECONDS",
	"SHEETS_API_URL", "SHEETS_TIMEOUT_SECONDS",
	"REDIS_URL", "SNAPSHOT_TTL_SECONDS", "REFRESH_INTERVAL_SECONDS",
}

func unsetAll() {
	for _, k := range configKeys {
		os.Unsetenv(k)
	}
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	unsetAll()
	os.Setenv("SHEETS_API_URL", "https://sheets.test/exec")
	defer unsetAll()

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout())
	assert.Equal(t, time.Minute, cfg.WriteTimeout())
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, 10*time.Second, cfg.Sheets.Timeout())
	assert.Empty(t, cfg.Snapshot.RedisURL)
	assert.Equal(t, time.Minute, cfg.Snapshot.TTL())
	assert.Equal(t, 5*time.Minute, cfg.Snapshot.RefreshInterval())
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	unsetAll()
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("SERVER_WRITE_TIMEOUT_SECONDS", "5")
	os.Setenv("TIMEZONE", "UTC")
	os.Setenv("SHEETS_API_URL", "https://example.com/exec")
	os.Setenv("SHEETS_TIMEOUT_SECONDS", "3")
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	os.Setenv("REFRESH_INTERVAL_SECONDS", "0")
	defer unsetAll()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout())
	assert.Equal(t, "https://example.com/exec", cfg.Sheets.URL)
	assert.Equal(t, 3*time.Second, cfg.Sheets.Timeout())
	assert.Equal(t, "redis://localhost:6379/0", cfg.Snapshot.RedisURL)
	assert.Equal(t, time.Duration(0), cfg.Snapshot.RefreshInterval())
	assert.Equal(t, time.UTC, cfg.Location())
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	unsetAll()
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
SHEETS_API_URL=https://staging.example.com/exec
SNAPSHOT_TTL_SECONDS=30
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "https://staging.example.com/exec", cfg.Sheets.URL)
	assert.Equal(t, 30*time.Second, cfg.Snapshot.TTL())
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	unsetAll()

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: SHEETS_API_URL")
}

func TestLocation_UnknownZone(t *testing.T) {
	cfg := &AppConfig{Timezone: "Mars/Olympus_Mons"}

	assert.Equal(t, time.Local, cfg.Location())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "content", cfg.Content.Dir)
	assert.Equal(t, filepath.Join("data", "lhsite.db"), cfg.Database.SQLitePath)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
}

func TestLoad_TOMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lhsite.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"

[server]
addr = "0.0.0.0:9090"

[content]
dir = "/srv/content"

[smtp]
host = "smtp.example.com"
from = "noreply@example.com"
notify_to = "team@example.com"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr)
	assert.Equal(t, "/srv/content", cfg.Content.Dir)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, "team@example.com", cfg.SMTP.NotifyTo)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched sections keep their defaults.
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoad_EnvOverridesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lhsite.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
addr = "0.0.0.0:9090"
`), 0o644))

	t.Setenv("LHSITE_ADDR", ":7070")
	t.Setenv("DATABASE_URL", "postgres://app@db/site")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "postgres://app@db/site", cfg.Database.URL)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lhsite.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_IgnoresInvalidSMTPPortEnv(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "termsweeper", cfg.Telemetry.Dataset)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SWEEPER_SEED", "99")
	t.Setenv("SWEEPER_LOG_LEVEL", "debug")
	t.Setenv("SWEEPER_LOG_FILE", "/tmp/sweeper.log")
	t.Setenv("SWEEPER_TELEMETRY", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/sweeper.log", cfg.Log.File)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("SWEEPER_SEED", "lots")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "seed: 7\nlog:\n  level: warn\ntelemetry:\n  enabled: true\n  api-key: abc\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "x-honeycomb-team=abc,x-honeycomb-dataset=termsweeper", cfg.Telemetry.OTLPHeaders())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestOTLPHeadersWithoutKey(t *testing.T) {
	assert.Empty(t, Telemetry{Dataset: "x"}.OTLPHeaders())
}

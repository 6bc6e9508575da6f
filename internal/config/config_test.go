package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Zero(t, cfg.Agent.Seed)
	assert.Empty(t, cfg.Board.Path)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
board:
  path: boards/small.txt
agent:
  seed: 42
log:
  level: debug
  development: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "boards/small.txt", cfg.Board.Path)
	assert.Equal(t, uint64(42), cfg.Agent.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "agent:\n  seed: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SWEEPER_SEED", "7")
	t.Setenv("SWEEPER_LOG_LEVEL", "warn")
	t.Setenv("SWEEPER_BOARD", "other.txt")
	cfg, err := Load(writeConfig(t, "agent:\n  seed: 3\nlog:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Agent.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "other.txt", cfg.Board.Path)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "log: [\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "log:\n  level: verbose\n"))
	assert.ErrorContains(t, err, "invalid config")

	t.Setenv("SWEEPER_SEED", "not a number")
	_, err = Load("")
	assert.ErrorContains(t, err, "parse env")
}

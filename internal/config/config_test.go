package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
game:
  players: 6
  rounds: 2
  seed: 42

log:
  level: debug
  file: "game.log"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 6, cfg.Game.Players)
	assert.Equal(t, 2, cfg.Game.Rounds)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "game.log", cfg.Log.File)
}

func TestLoad_DefaultsFillMissingValues(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("game:\n  seed: 7\n"), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Game.Players)
	assert.Equal(t, 4, cfg.Game.Rounds)
	assert.Equal(t, uint64(7), cfg.Game.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("game: [broken"), 0o600)
	require.NoError(t, err)

	_, err = Load(configPath)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 4, cfg.Game.Players)
	assert.Equal(t, 4, cfg.Game.Rounds)
	assert.Equal(t, "info", cfg.Log.Level)
}

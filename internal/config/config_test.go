package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iamasit07/connect-n/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsFromEnv(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Game.Width)
	assert.Equal(t, 6, cfg.Game.Height)
	assert.Equal(t, 4, cfg.Game.WinLength)
	assert.Equal(t, "XO", cfg.Game.Players)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, "8080", cfg.Watch.Port)
	assert.Equal(t, 2*time.Hour, cfg.Watch.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.Watch.SweepInterval)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BOARD_WIDTH", "9")
	t.Setenv("PLAYERS", "XOZ")
	t.Setenv("WATCH_ENABLED", "true")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load("")
	require.NoError(t, err)

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, 9, rules.Width)
	assert.Equal(t, domain.PlayerSet{'X', 'O', 'Z'}, rules.Players)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Watch.AllowedOrigins)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
game:
  width: 5
  height: 5
  win_length: 3
  players: AB
watch:
  enabled: true
  port: "9090"
  token_ttl: 15m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("WIN_LENGTH", "4")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Game.Width)
	assert.Equal(t, 4, cfg.Game.WinLength, "environment wins over the file")
	assert.Equal(t, "AB", cfg.Game.Players)
	assert.Equal(t, "9090", cfg.Watch.Port)
	assert.Equal(t, 15*time.Minute, cfg.Watch.TokenTTL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalidRules(t *testing.T) {
	t.Setenv("BOARD_WIDTH", "2")
	t.Setenv("BOARD_HEIGHT", "2")

	_, err := Load("")
	assert.ErrorIs(t, err, domain.ErrInvalidRules)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestUsageListsVariables(t *testing.T) {
	usage := Usage()
	assert.Contains(t, usage, "BOARD_WIDTH")
	assert.Contains(t, usage, "WATCH_SECRET")
}

func TestLoadRejectsZeroSweepInterval(t *testing.T) {
	t.Setenv("WATCH_ENABLED", "true")
	t.Setenv("WATCH_SWEEP_INTERVAL", "0s")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadFromFlagsUsesConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  players: ABC\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadFromFlags()
	require.NoError(t, err)
	assert.Equal(t, "ABC", cfg.Game.Players)
	assert.Equal(t, 7, cfg.Game.Width)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_createsDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.FileExists(t, filepath.Join(dir, "pairs", "config.toml"))
}

func TestSaveConfig_roundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	config := Default()
	require.NoError(t, config.Set("player_name", "ana"))
	require.NoError(t, config.Set("difficulty", "hard"))
	require.NoError(t, SaveConfig(config))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "ana", loaded.PlayerName)
	assert.Equal(t, "hard", loaded.Difficulty)
	assert.Equal(t, DefaultAPIURL, loaded.APIURL)
}

func TestLoadConfig_keepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pairs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pairs", "config.toml"), []byte(`player_name = "ben"`), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "ben", config.PlayerName)
	assert.Equal(t, DefaultGameURL, config.GameURL)
}

func TestLoadConfig_invalidFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pairs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pairs", "config.toml"), []byte(`player_name = `), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_GetSet(t *testing.T) {
	config := Default()

	value, err := config.Get("game_url")
	require.NoError(t, err)
	assert.Equal(t, DefaultGameURL, value)

	assert.Error(t, config.Set("colour", "blue"))
	_, err = config.Get("colour")
	assert.Error(t, err)

	assert.Equal(t, []string{"api_url", "difficulty", "game_url", "player_name", "theme"}, Keys())
}

// ABOUTME: Tests for configuration loading, saving, and backend selection.
// ABOUTME: Uses XDG_CONFIG_HOME to isolate config files per test.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/lift/internal/storage"
)

func TestGetBackendDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "sqlite", cfg.GetBackend())

	cfg.Backend = "kv"
	assert.Equal(t, "kv", cfg.GetBackend())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "lift-data"), ExpandPath("~/lift-data"))
	assert.Equal(t, "/var/lib/lift", ExpandPath("/var/lib/lift"))
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "kv", DataDir: "/tmp/lift-test"}
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "kv", loaded.Backend)
	assert.Equal(t, "/tmp/lift-test", loaded.DataDir)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.GetBackend())
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()

	repo, err := OpenBackend("sqlite", dir)
	require.NoError(t, err)
	_, ok := repo.(*storage.DB)
	assert.True(t, ok, "sqlite backend must be the SQL store")
	require.NoError(t, repo.Close())

	repo, err = OpenBackend("kv", dir)
	require.NoError(t, err)
	_, ok = repo.(*storage.KVStore)
	assert.True(t, ok, "kv backend must be the key-value store")
	require.NoError(t, repo.Close())

	_, err = OpenBackend("postgres", dir)
	assert.Error(t, err)
}

func TestOpenStorageUsesConfiguredBackend(t *testing.T) {
	cfg := &Config{Backend: "kv", DataDir: t.TempDir()}

	repo, err := cfg.OpenStorage()
	require.NoError(t, err)
	defer repo.Close()

	_, ok := repo.(*storage.KVStore)
	assert.True(t, ok)
}

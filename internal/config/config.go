// ABOUTME: Lift configuration management with backend selection.
// ABOUTME: Handles settings and the storage backend factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/lift/internal/storage"
)

// Config stores lift tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or
	// "kv", the flat key-value store for platforms without an
	// embedded SQL engine.
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts
	// lift.db here; the kv backend puts its kv/ directory here.
	// Supports ~ expansion. Defaults to ~/.local/share/lift.
	DataDir string `json:"data_dir,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the
// configured backend. This is the only place the backend is decided;
// callers hold the returned Repository and never branch on it again.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return OpenBackend(c.GetBackend(), c.GetDataDir())
}

// OpenBackend opens the named backend rooted at dataDir.
func OpenBackend(backend, dataDir string) (storage.Repository, error) {
	switch backend {
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "lift.db"))
	case "kv":
		return storage.OpenKV(dataDir)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lift", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

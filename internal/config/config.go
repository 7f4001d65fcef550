// ABOUTME: Biome configuration management with storage factory.
// ABOUTME: Persists data directory and demo-mode selection across invocations.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/biome/internal/storage"
)

// Config stores biome tool configuration.
type Config struct {
	// DataDir is the root directory for data storage. The SQLite database
	// and the profile store live here. Supports ~ expansion; defaults to
	// ~/.local/share/biome.
	DataDir string `json:"data_dir,omitempty"`

	// DemoMode selects the demo partition for all reads when true.
	// Single-entry appends still target the primary partition.
	DemoMode bool `json:"demo_mode,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ProfileDir returns the directory holding the badger profile store.
func (c *Config) ProfileDir() string {
	return filepath.Join(c.GetDataDir(), "profile")
}

// OpenStorage opens the training database and applies the persisted
// partition selection.
func (c *Config) OpenStorage() (*storage.DB, error) {
	dbPath := filepath.Join(c.GetDataDir(), "biome.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, err
	}
	if c.DemoMode {
		db.SelectPartition(storage.PartitionDemo)
	}
	return db, nil
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

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "biome", "config.json")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

// Save writes the config to the default path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes the config to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

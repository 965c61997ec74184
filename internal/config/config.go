// Package config loads the YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sadopc/orderclock/internal/store"
)

// Config holds all orderclock configuration.
type Config struct {
	// DatabasePath overrides the default database location.
	DatabasePath string `yaml:"database_path"`

	Logging   LoggingConfig   `yaml:"logging"`
	Companion CompanionConfig `yaml:"companion"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// CompanionConfig controls the companion sync link.
type CompanionConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn"},
	}
}

// Load reads the config at path. A missing file yields the defaults; a file
// that exists but does not parse is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns ~/.config/orderclock/config.yaml
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "orderclock", "config.yaml"), nil
}

// ResolveDBPath picks the configured database path or the store default.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DatabasePath != "" {
		return c.DatabasePath, nil
	}
	return store.DefaultDBPath()
}

// Package config handles loading and saving user configuration for agedash.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for agedash.
type Config struct {
	DataFile string       `yaml:"data_file"`       // CSV, SQLite or JSON lines file
	Table    string       `yaml:"table,omitempty"` // SQLite table name
	Export   ExportConfig `yaml:"export"`
	Log      LogConfig    `yaml:"log"`
}

// ExportConfig holds settings for chart image export.
type ExportConfig struct {
	Path   string `yaml:"path"`           // e.g., "ages.png", "ages.svg"
	Width  int    `yaml:"width"`          // pixels
	Height int    `yaml:"height"`         // pixels
	Font   string `yaml:"font,omitempty"` // TrueType font file
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	File  string `yaml:"file,omitempty"` // empty disables logging
	Level string `yaml:"level"`          // logrus level name
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataFile: "country_data.csv",
		Table:    "country_data",
		Export: ExportConfig{
			Path:   "ages_by_country.png",
			Width:  1400,
			Height: 600,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a configuration file. Fields missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// LoadDir reads config.yaml from dir. A missing file yields the defaults.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a configuration file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "agedash"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

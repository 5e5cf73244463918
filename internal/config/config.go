package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Paths    PathsConfig    `yaml:"paths"`
}

// DefaultsConfig holds default values for a conversion run
type DefaultsConfig struct {
	Workers int    `yaml:"workers"`
	Effort  int    `yaml:"effort"`
	Timeout string `yaml:"timeout"`
}

// PathsConfig holds custom path overrides
type PathsConfig struct {
	Cjxl string `yaml:"cjxl"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Workers: 8,
			Effort:  7,
			Timeout: "5m",
		},
		Paths: PathsConfig{
			Cjxl: "",
		},
	}
}

// AppDir returns the application directory (~/.img2jxl)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".img2jxl"
	}
	return filepath.Join(home, ".img2jxl")
}

// BinDir returns the bin directory for a bundled cjxl binary
func BinDir() string {
	return filepath.Join(AppDir(), "bin")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// EnsureDirs creates all required directories
func EnsureDirs() error {
	dirs := []string{AppDir(), BinDir()}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetTimeout returns the per-task timeout as a duration. An empty or "0"
// value disables the timeout.
func (c *Config) GetTimeout() (time.Duration, error) {
	if c.Defaults.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Defaults.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Defaults.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", c.Defaults.Timeout)
	}
	return d, nil
}

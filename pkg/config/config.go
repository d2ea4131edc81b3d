/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/fpconv/pkg/format"
)

// Config represents the fpconv configuration
type Config struct {
	Logging  Logging  `yaml:"logging"`
	Report   Report   `yaml:"report"`
	Defaults Defaults `yaml:"defaults"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Report contains output rendering configuration
type Report struct {
	HumanSizes bool `yaml:"human_sizes"`
	Color      bool `yaml:"color"`
}

// Defaults holds format names used when --from or --to is omitted
type Defaults struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: Logging{
			Level: "warn",
		},
		Report: Report{
			HumanSizes: false,
			Color:      true,
		},
	}
}

// Validate checks that configured values are usable
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	for _, name := range []string{c.Defaults.From, c.Defaults.To} {
		if name == "" {
			continue
		}
		if _, err := format.Lookup(name); err != nil {
			return fmt.Errorf("invalid default format: %w", err)
		}
	}
	return nil
}

// ParseLevel converts a level name into a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// LoadConfig loads configuration from the specified path. Fields absent from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./fpconv.yaml"
	}

	// For Linux/macOS, use ~/.config/fpconv/config.yaml
	configDir := filepath.Join(homeDir, ".config", "fpconv")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

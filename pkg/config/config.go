/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the txconv configuration. Formats left empty here must be
// supplied on the command line.
type Config struct {
	InputFormat  string  `yaml:"input_format"`
	OutputFormat string  `yaml:"output_format"`
	Logging      Logging `yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
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

	return config, nil
}

// SaveConfig saves the configuration to the specified path
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
		return "./txconv.yaml"
	}

	// For Linux/macOS, use ~/.config/txconv/config.yaml
	configDir := filepath.Join(homeDir, ".config", "txconv")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

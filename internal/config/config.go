package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file.
const FileName = "ledgerline.yaml"

// Config is the app-level configuration stored next to the data file.
// Business/tax settings live inside the snapshot; this file only covers
// where the data lives and how the process behaves.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
	License  LicenseConfig  `yaml:"license"`
}

// BusinessConfig identifies the business for display purposes.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// DataConfig locates the snapshot file, relative to the project directory.
type DataConfig struct {
	File string `yaml:"file"`
}

// LoggingConfig controls the zerolog setup.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LicenseConfig holds the activation state and the validation endpoint.
type LicenseConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Key      string `yaml:"key,omitempty"`
	Email    string `yaml:"email,omitempty"`
}

// Load reads a ledgerline.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Data.File == "" {
		cfg.Data.File = "data.json"
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Data:     DataConfig{File: "data.json"},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

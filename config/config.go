// Package config provides configuration loading and management for roxmodel.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/roxmodel/schema"
)

// Config represents the complete roxmodel configuration
type Config struct {
	Vocabulary VocabularyConfig    `yaml:"vocabulary"`
	Storage    StorageConfig       `yaml:"storage"`
	Bridges    []schema.BridgeRule `yaml:"bridges"`
	Log        LogConfig           `yaml:"log"`
}

// VocabularyConfig selects the vocabulary sources
type VocabularyConfig struct {
	// CatalogPath is a catalog vocabulary CSV (empty = embedded default)
	CatalogPath string `yaml:"catalog_path"`
	// RoboticsPath is a robotics vocabulary CSV (empty = embedded default)
	RoboticsPath string `yaml:"robotics_path"`
}

// StorageConfig configures the asset store
type StorageConfig struct {
	// Dir is the directory asset files are saved under
	Dir string `yaml:"dir"`
}

// LogConfig configures logging output
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, or error
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level name to a slog.Level. An empty
// level means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", l.Level)
	}
}

// DefaultConfig returns a Config with sensible defaults: embedded
// vocabularies, the built-in bridge table, and a local assets directory
func DefaultConfig() *Config {
	return &Config{
		Vocabulary: VocabularyConfig{}, // empty paths select the embedded CSVs
		Storage: StorageConfig{
			Dir: "assets",
		},
		Bridges: schema.DefaultBridges(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	for i, rule := range c.Bridges {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("bridges[%d]: %w", i, err)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file layered over the
// defaults, expanding ${VAR} references from the environment
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := unmarshalFile(path, config); err != nil {
		return nil, err
	}
	config.ExpandEnv()
	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// Merge merges another config into this one. Set fields of other take
// precedence; a non-nil bridge list replaces the whole table, so a
// config file can clear the built-in bridges with an empty list.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Vocabulary.CatalogPath != "" {
		c.Vocabulary.CatalogPath = other.Vocabulary.CatalogPath
	}
	if other.Vocabulary.RoboticsPath != "" {
		c.Vocabulary.RoboticsPath = other.Vocabulary.RoboticsPath
	}
	if other.Storage.Dir != "" {
		c.Storage.Dir = other.Storage.Dir
	}
	if other.Bridges != nil {
		c.Bridges = other.Bridges
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// ExpandEnv expands ${VAR} references in all string fields
func (c *Config) ExpandEnv() {
	c.Vocabulary.CatalogPath = os.ExpandEnv(c.Vocabulary.CatalogPath)
	c.Vocabulary.RoboticsPath = os.ExpandEnv(c.Vocabulary.RoboticsPath)
	c.Storage.Dir = os.ExpandEnv(c.Storage.Dir)
	c.Log.Level = os.ExpandEnv(c.Log.Level)
}

// unmarshalFile reads one YAML file into cfg
func unmarshalFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

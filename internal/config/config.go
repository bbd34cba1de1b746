// Package config loads CLI configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables prefixed with TYPOCHECK_ (a .env file in the working
// directory is honoured). Example: TYPOCHECK_THRESHOLD=1,
// TYPOCHECK_LOG_LEVEL=debug.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "TYPOCHECK"

var (
	// ErrInvalidThreshold is returned for a negative threshold.
	ErrInvalidThreshold = errors.New("config: threshold must not be negative")
	// ErrInvalidWorkers is returned for a non-positive worker count.
	ErrInvalidWorkers = errors.New("config: workers must be positive")
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("config: format must be csv or json")
)

// Config holds all configuration for the typocheck CLI.
type Config struct {
	// Threshold is the largest edit distance that produces a suggestion (default: 2)
	Threshold int `yaml:"threshold" split_words:"true"`

	// DomainsFile points at a reference list, one domain per line.
	// Takes precedence over Domains.
	DomainsFile string `yaml:"domains_file" split_words:"true"`

	// Domains is an inline reference list. Empty means the built-in list.
	Domains []string `yaml:"domains" ignored:"true"`

	// Workers is the number of concurrent classifiers (default: 5)
	Workers int `yaml:"workers" split_words:"true"`

	// CacheSize bounds the per-domain match cache; 0 disables it (default: 4096)
	CacheSize int `yaml:"cache_size" split_words:"true"`

	// Format is the report format: csv or json (default: csv)
	Format string `yaml:"format" split_words:"true"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `yaml:"level"`

	// Format is the log format: text or json (default: text)
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Threshold: 2,
		Workers:   5,
		CacheSize: 4096,
		Format:    "csv",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// Missing .env is the common case.
	_ = godotenv.Load()

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Threshold < 0 {
		return ErrInvalidThreshold
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	switch c.Format {
	case "csv", "json":
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidFormat, c.Format)
	}
	return nil
}

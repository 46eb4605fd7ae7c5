// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/hourscan-go/pkg/hourscan"
	"github.com/ukaji3/hourscan-go/pkg/hourscan/parser"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvRoot        = "HOURSCAN_ROOT"
	EnvLogLevel    = "HOURSCAN_LOG_LEVEL"
	EnvConcurrency = "HOURSCAN_CONCURRENCY"
)

// Config represents the CLI configuration that can be loaded from a YAML file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Root        string `yaml:"root,omitempty"`        // Default search folder
	Format      string `yaml:"format,omitempty"`      // json, table or summary
	LogLevel    string `yaml:"log_level,omitempty"`   // debug, info, warn, error
	Concurrency int    `yaml:"concurrency,omitempty"` // Workbooks scanned at once
	MaxFileMB   int64  `yaml:"max_file_mb,omitempty"` // Size limit per workbook

	Headers HeaderConfig `yaml:"headers,omitempty"`
}

// HeaderConfig overrides the labels used to classify sheet headers.
type HeaderConfig struct {
	IdentifierAliases []string `yaml:"identifier_aliases,omitempty"`
	CategoryA         string   `yaml:"category_a,omitempty"`
	CategoryB         string   `yaml:"category_b,omitempty"`
	PendingMarker     string   `yaml:"pending_marker,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	rules := parser.DefaultHeaderRules()
	return Config{
		Format:      "table",
		LogLevel:    "info",
		Concurrency: 1,
		MaxFileMB:   hourscan.DefaultMaxFileSize / 1024 / 1024,
		Headers: HeaderConfig{
			IdentifierAliases: rules.IdentifierAliases,
			CategoryA:         rules.CategoryA,
			CategoryB:         rules.CategoryB,
			PendingMarker:     rules.PendingMarker,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvRoot); v != "" {
		c.Root = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvConcurrency, err)
		}
		c.Concurrency = n
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", "json", "table", "summary":
	default:
		return fmt.Errorf("config error: unknown format %q (must be json, table or summary)", c.Format)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log_level %q", c.LogLevel)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.MaxFileMB < 0 {
		return fmt.Errorf("config error: 'max_file_mb' must be non-negative")
	}
	for _, alias := range c.Headers.IdentifierAliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("config error: identifier aliases must not be blank")
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Root == "" {
		result.Root = defaults.Root
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.MaxFileMB == 0 {
		result.MaxFileMB = defaults.MaxFileMB
	}
	if len(result.Headers.IdentifierAliases) == 0 {
		result.Headers.IdentifierAliases = defaults.Headers.IdentifierAliases
	}
	if result.Headers.CategoryA == "" {
		result.Headers.CategoryA = defaults.Headers.CategoryA
	}
	if result.Headers.CategoryB == "" {
		result.Headers.CategoryB = defaults.Headers.CategoryB
	}
	if result.Headers.PendingMarker == "" {
		result.Headers.PendingMarker = defaults.Headers.PendingMarker
	}

	return result
}

// Options converts the configuration into search options.
func (c *Config) Options() hourscan.Options {
	opts := hourscan.DefaultOptions()
	opts.Rules = parser.HeaderRules{
		IdentifierAliases: c.Headers.IdentifierAliases,
		CategoryA:         c.Headers.CategoryA,
		CategoryB:         c.Headers.CategoryB,
		PendingMarker:     c.Headers.PendingMarker,
	}
	if c.MaxFileMB > 0 {
		opts.MaxFileSize = c.MaxFileMB * 1024 * 1024
	}
	if c.Concurrency > 0 {
		opts.Concurrency = c.Concurrency
	}
	return opts
}

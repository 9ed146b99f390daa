package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-tree config file, looked up in the scan root.
const FileName = ".schemaindex.yaml"

// Config holds all schemaindex configuration.
type Config struct {
	// Page header and branding
	Site SiteConfig `yaml:"site"`

	// Which files are collected and how records are derived
	Scan ScanConfig `yaml:"scan"`

	// Grouping and description rendering
	Render RenderConfig `yaml:"render"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			PageTitle:  "SYNQ - JSON Schemas",
			Heading:    "JSON Schemas",
			Subtitle:   "Public JSON Schema definitions for SYNQ tools and services.",
			DocsURL:    "https://docs.synq.io/",
			DocsLabel:  "docs.synq.io",
			LogoSrc:    "synq-logo.svg",
			LogoAlt:    "SYNQ",
			LogoWidth:  92,
			LogoHeight: 24,
		},

		Scan: ScanConfig{
			Include:       "**/*.schema.json",
			SchemaSuffix:  ".schema.json",
			HTMLSuffix:    ".html",
			ExcludeDirs:   []string{".github"},
			TitlePrefix:   "SYNQ ",
			StatusKey:     "x-status",
			DefaultStatus: "stable",
		},

		Render: RenderConfig{
			GroupOrder: []string{"stable", "draft"},
			StatusLabels: map[string]string{
				"stable": "Stable",
				"draft":  "Draft",
			},
		},

		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// LoadFromRoot loads FileName from the given scan root.
func LoadFromRoot(root string) (*Config, error) {
	return Load(filepath.Join(root, FileName))
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Only logging settings are overridable.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("SCHEMAINDEX_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("SCHEMAINDEX_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Scan.SchemaSuffix == "" {
		return fmt.Errorf("scan.schema_suffix must not be empty")
	}
	if c.Scan.HTMLSuffix == "" {
		return fmt.Errorf("scan.html_suffix must not be empty")
	}
	if c.Scan.DefaultStatus == "" {
		return fmt.Errorf("scan.default_status must not be empty")
	}
	if !doublestar.ValidatePattern(c.Scan.Include) {
		return fmt.Errorf("invalid scan.include pattern: %q", c.Scan.Include)
	}
	for _, pattern := range c.Scan.ExcludeGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid scan.exclude_globs pattern: %q", pattern)
		}
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid logging.format: %s (valid: console, json)", c.Logging.Format)
	}

	return nil
}

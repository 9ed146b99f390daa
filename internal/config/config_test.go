package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Scan.Include != "**/*.schema.json" {
		t.Errorf("expected Include=**/*.schema.json, got %s", cfg.Scan.Include)
	}
	if cfg.Scan.DefaultStatus != "stable" {
		t.Errorf("expected DefaultStatus=stable, got %s", cfg.Scan.DefaultStatus)
	}
	if cfg.Scan.TitlePrefix != "SYNQ " {
		t.Errorf("expected TitlePrefix=%q, got %q", "SYNQ ", cfg.Scan.TitlePrefix)
	}
	assert.Equal(t, []string{".github"}, cfg.Scan.ExcludeDirs)
	assert.Equal(t, []string{"stable", "draft"}, cfg.Render.GroupOrder)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("SCHEMAINDEX_LOG_LEVEL", "")
	t.Setenv("SCHEMAINDEX_LOG_FORMAT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("SCHEMAINDEX_LOG_LEVEL", "")
	t.Setenv("SCHEMAINDEX_LOG_FORMAT", "")

	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := DefaultConfig()
	cfg.Site.Heading = "Acme Schemas"
	cfg.Scan.ExcludeGlobs = []string{"vendor/**"}
	cfg.Render.MarkdownDescriptions = true

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("SCHEMAINDEX_LOG_LEVEL", "")
	t.Setenv("SCHEMAINDEX_LOG_FORMAT", "")

	root := t.TempDir()
	data := "site:\n  heading: Internal Schemas\nrender:\n  status_labels:\n    beta: Beta\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(data), 0644))

	cfg, err := LoadFromRoot(root)
	require.NoError(t, err)

	assert.Equal(t, "Internal Schemas", cfg.Site.Heading)
	assert.Equal(t, "JSON Schemas", DefaultConfig().Site.Heading)
	assert.Equal(t, "https://docs.synq.io/", cfg.Site.DocsURL)
	assert.Equal(t, ".schema.json", cfg.Scan.SchemaSuffix)
	assert.Equal(t, "Beta", cfg.Render.StatusLabels["beta"])
	assert.Equal(t, "Stable", cfg.Render.StatusLabels["stable"])
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("site: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty schema suffix", func(c *Config) { c.Scan.SchemaSuffix = "" }, "schema_suffix"},
		{"empty html suffix", func(c *Config) { c.Scan.HTMLSuffix = "" }, "html_suffix"},
		{"empty default status", func(c *Config) { c.Scan.DefaultStatus = "" }, "default_status"},
		{"bad include", func(c *Config) { c.Scan.Include = "[" }, "scan.include"},
		{"bad exclude glob", func(c *Config) { c.Scan.ExcludeGlobs = []string{"a/[b"} }, "exclude_globs"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

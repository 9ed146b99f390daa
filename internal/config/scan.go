package config

// ScanConfig controls which files are collected and how records are derived.
type ScanConfig struct {
	// Include is a doublestar glob matched against the slash-separated path
	// relative to the scan root.
	Include string `yaml:"include"`

	// SchemaSuffix is stripped from file names to derive titles and HTML paths.
	SchemaSuffix string `yaml:"schema_suffix"`
	HTMLSuffix   string `yaml:"html_suffix"`

	// ExcludeDirs are directory names skipped at any depth.
	ExcludeDirs []string `yaml:"exclude_dirs"`
	// ExcludeGlobs skip matching relative paths (doublestar syntax).
	ExcludeGlobs []string `yaml:"exclude_globs"`

	// TitlePrefix is removed from the front of titles (exact, case-sensitive).
	TitlePrefix string `yaml:"title_prefix"`

	// StatusKey is the vendor-extension key holding the lifecycle status.
	StatusKey     string `yaml:"status_key"`
	DefaultStatus string `yaml:"default_status"`
}

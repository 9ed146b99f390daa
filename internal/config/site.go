package config

// SiteConfig configures the page header.
type SiteConfig struct {
	PageTitle string `yaml:"page_title"` // <title> of the document
	Heading   string `yaml:"heading"`
	Subtitle  string `yaml:"subtitle"`
	DocsURL   string `yaml:"docs_url"`
	DocsLabel string `yaml:"docs_label"`

	// Header logo, relative to the output page
	LogoSrc    string `yaml:"logo_src"`
	LogoAlt    string `yaml:"logo_alt"`
	LogoWidth  int    `yaml:"logo_width"`
	LogoHeight int    `yaml:"logo_height"`
}

// HasLogo reports whether a header logo should be rendered.
func (s SiteConfig) HasLogo() bool {
	return s.LogoSrc != ""
}

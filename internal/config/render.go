package config

// RenderConfig configures grouping and description rendering.
type RenderConfig struct {
	// MarkdownDescriptions renders descriptions as sanitized Markdown
	// instead of escaped plain text.
	MarkdownDescriptions bool `yaml:"markdown_descriptions"`

	// GroupOrder lists statuses whose groups come first, in order.
	// Other statuses follow in lexical order.
	GroupOrder []string `yaml:"group_order"`

	// StatusLabels maps a status to its section label.
	StatusLabels map[string]string `yaml:"status_labels"`
}

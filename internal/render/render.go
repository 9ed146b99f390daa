// Package render writes the schema index page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"schemaindex/internal/catalog"
	"schemaindex/internal/config"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// Page is the data rendered into the index template.
type Page struct {
	Site   config.SiteConfig
	Groups []catalog.Group
}

// Count returns the number of records across all groups.
func (p Page) Count() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Records)
	}
	return n
}

// Renderer renders Pages with the embedded index template.
type Renderer struct {
	tmpl *template.Template

	markdown bool
	md       goldmark.Markdown
	policy   *bluemonday.Policy
}

// New parses the embedded template. When markdown is set, descriptions are
// rendered as Markdown and sanitized; otherwise they are escaped plain text.
func New(markdown bool) (*Renderer, error) {
	r := &Renderer{markdown: markdown}
	if markdown {
		r.md = goldmark.New()
		r.policy = bluemonday.UGCPolicy()
	}

	tmpl, err := template.New("index.html.tmpl").
		Funcs(template.FuncMap{"describe": r.describe, "badgeClass": badgeClass}).
		ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Render writes the page to w.
func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return nil
}

// WriteFile renders the page and overwrites path with the result.
// Rendering happens in memory first so a failure leaves path untouched.
func (r *Renderer) WriteFile(path string, page Page) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// describe turns a description into card HTML.
func (r *Renderer) describe(desc string) (template.HTML, error) {
	if !r.markdown {
		return template.HTML(template.HTMLEscapeString(desc)), nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(desc), &buf); err != nil {
		return "", fmt.Errorf("failed to convert description: %w", err)
	}
	safe := r.policy.SanitizeBytes(buf.Bytes())
	return template.HTML(strings.TrimSpace(string(safe))), nil
}

// badgeClass turns a status into a single CSS class token:
// lower-cased, with whitespace runs collapsed to "-".
func badgeClass(status string) string {
	return "badge-" + strings.Join(strings.Fields(strings.ToLower(status)), "-")
}

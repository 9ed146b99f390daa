// Package generator runs the schema index pipeline: collect, sort, group, render.
package generator

import (
	"fmt"

	"go.uber.org/zap"

	"schemaindex/internal/catalog"
	"schemaindex/internal/config"
	"schemaindex/internal/render"
)

// Result summarizes a finished run.
type Result struct {
	Output string
	Count  int
	Groups int
}

// Generator builds the index page for one scan root.
type Generator struct {
	cfg       *config.Config
	collector *catalog.Collector
	renderer  *render.Renderer
	logger    *zap.Logger
}

// New validates cfg and prepares the collector and renderer.
func New(cfg *config.Config, logger *zap.Logger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	renderer, err := render.New(cfg.Render.MarkdownDescriptions)
	if err != nil {
		return nil, err
	}

	return &Generator{
		cfg:       cfg,
		collector: catalog.NewCollector(cfg.Scan, logger.Named("collector")),
		renderer:  renderer,
		logger:    logger,
	}, nil
}

// Run scans root and writes the index to output.
// Nothing is written unless every schema file was collected.
func (g *Generator) Run(root, output string) (Result, error) {
	g.logger.Debug("Scanning schemas", zap.String("root", root))

	records, err := g.collector.Collect(root)
	if err != nil {
		return Result{}, fmt.Errorf("failed to collect schemas: %w", err)
	}

	sorted := catalog.Sort(records)
	page := render.Page{
		Site:   g.cfg.Site,
		Groups: catalog.GroupByStatus(sorted, g.cfg.Render.GroupOrder, g.cfg.Render.StatusLabels),
	}

	if err := g.renderer.WriteFile(output, page); err != nil {
		return Result{}, err
	}

	res := Result{Output: output, Count: len(records), Groups: len(page.Groups)}
	g.logger.Info("Index generated",
		zap.String("output", res.Output),
		zap.Int("schemas", res.Count),
		zap.Int("groups", res.Groups))
	return res, nil
}

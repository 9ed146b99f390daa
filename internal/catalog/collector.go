package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"schemaindex/internal/config"
)

// Collector finds schema files under a root and builds records from them.
type Collector struct {
	cfg      config.ScanConfig
	excluded map[string]bool
	logger   *zap.Logger
}

// NewCollector creates a collector. A nil logger disables logging.
func NewCollector(cfg config.ScanConfig, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	excluded := make(map[string]bool, len(cfg.ExcludeDirs))
	for _, name := range cfg.ExcludeDirs {
		excluded[name] = true
	}
	return &Collector{cfg: cfg, excluded: excluded, logger: logger}
}

// Collect walks root in lexical order and returns one record per matching
// schema file. Any filesystem or parse failure aborts the whole collection.
func (c *Collector) Collect(root string) ([]Record, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &FSError{Op: "stat", Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &FSError{Op: "stat", Path: root, Err: errors.New("not a directory")}
	}

	// WalkDir does not descend into a symlinked root.
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, &FSError{Op: "resolve", Path: root, Err: err}
	}
	root = resolved

	var records []Record
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return &FSError{Op: "walk", Path: p, Err: walkErr}
		}
		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return &FSError{Op: "walk", Path: p, Err: err}
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if c.excluded[d.Name()] {
				c.logger.Debug("Skipping excluded directory", zap.String("path", rel))
				return filepath.SkipDir
			}
			return nil
		}

		if !c.matches(rel) {
			return nil
		}
		regular, err := isRegularFile(p, d)
		if err != nil {
			return &FSError{Op: "stat", Path: rel, Err: err}
		}
		if !regular {
			c.logger.Debug("Skipping non-regular file", zap.String("path", rel))
			return nil
		}

		rec, err := c.load(p, rel)
		if err != nil {
			return err
		}
		c.logger.Debug("Collected schema",
			zap.String("path", rec.RelPath),
			zap.String("title", rec.Title),
			zap.String("status", rec.Status))
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// matches applies the include glob and the exclude globs to a relative path.
func (c *Collector) matches(rel string) bool {
	if ok, err := doublestar.Match(c.cfg.Include, rel); err != nil || !ok {
		return false
	}
	for _, pattern := range c.cfg.ExcludeGlobs {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			c.logger.Debug("Skipping excluded file", zap.String("path", rel), zap.String("pattern", pattern))
			return false
		}
	}
	return true
}

// isRegularFile follows symlinks so linked schema files are still collected.
// A symlink that cannot be resolved is an error, not a skip.
func isRegularFile(p string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(p)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func (c *Collector) load(p, rel string) (Record, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Record{}, &FSError{Op: "read", Path: rel, Err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return Record{}, &ParseError{Path: rel, Err: err}
	}
	if doc == nil {
		return Record{}, &ParseError{Path: rel, Err: errors.New("top-level value is not an object")}
	}

	title, err := stringField(doc, "title")
	if err != nil {
		return Record{}, &ParseError{Path: rel, Err: err}
	}
	status, err := stringField(doc, c.cfg.StatusKey)
	if err != nil {
		return Record{}, &ParseError{Path: rel, Err: err}
	}
	description, err := stringField(doc, "description")
	if err != nil {
		return Record{}, &ParseError{Path: rel, Err: err}
	}

	base := strings.TrimSuffix(path.Base(rel), c.cfg.SchemaSuffix)
	if title == "" {
		title = base
	}
	if status == "" {
		status = c.cfg.DefaultStatus
	}

	return Record{
		RelPath:     rel,
		HTMLPath:    path.Join(path.Dir(rel), base+c.cfg.HTMLSuffix),
		Title:       strings.TrimPrefix(title, c.cfg.TitlePrefix),
		Status:      status,
		Description: description,
	}, nil
}

var jsonNull = []byte("null")

// stringField returns the string under key. Absent keys and explicit nulls
// yield "", any other non-string value is an error.
func stringField(doc map[string]json.RawMessage, key string) (string, error) {
	raw, ok := doc[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%q must be a string: %w", key, err)
	}
	return s, nil
}

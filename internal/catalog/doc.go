// Package catalog collects JSON Schema files from a directory tree and turns
// them into ordered, grouped records for the documentation index.
//
// The pipeline is Collect, then Sort, then GroupByStatus. Every step is
// synchronous and allocation-only; nothing here writes to disk.
package catalog

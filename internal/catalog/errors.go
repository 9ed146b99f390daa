package catalog

import "fmt"

// ParseError reports a schema file that could not be decoded into a record.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse schema %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FSError reports a filesystem failure while scanning or reading.
type FSError struct {
	Op   string // stat, resolve, walk, read
	Path string
	Err  error
}

func (e *FSError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FSError) Unwrap() error { return e.Err }

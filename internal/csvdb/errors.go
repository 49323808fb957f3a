package csvdb

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the source CSV file does not exist. Read-only
// queries (Filter, Search) map it to an empty result; diagnostic operations
// (Stats, Deduplicate) surface it to the caller.
var ErrNotFound = errors.New("file not found")

// ParseError wraps a failure to interpret an existing file as tabular data.
// Operations that hit a ParseError abort without writing anything.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

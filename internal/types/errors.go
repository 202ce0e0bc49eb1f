package types

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the table path does not resolve to a readable file.
var ErrFileNotFound = errors.New("file not found")

// ParseError covers every other failure to turn a file into a Table:
// malformed CSV, an unreadable workbook, a file too short to hold a header.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(path string, err error) *ParseError {
	return &ParseError{Path: path, Err: err}
}

// NotFound wraps ErrFileNotFound with the offending path.
func NotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

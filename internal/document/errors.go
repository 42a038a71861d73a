// Package document reads and writes records stored as YAML frontmatter followed by a free
// text body.
package document

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when a file does not hold a delimited frontmatter block.
	ErrMalformed = errors.New("malformed document")

	// ErrNotDirectory is returned when the destination directory exists as a plain file.
	ErrNotDirectory = errors.New("not a directory")
)

// Error represents a failed document operation on a path.
type Error struct {
	Op    string
	Path  string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("document %s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

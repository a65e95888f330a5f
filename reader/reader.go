// Package reader defines the interface for parsing chat export files into
// the normalized chat model.
package reader

import (
	"errors"

	"github.com/sonnes/gupshup/core"
)

// Reader parses a chat export into the normalized model.
type Reader interface {
	// ReadFile parses the export file at the given path.
	ReadFile(path string) (*core.Chat, error)
}

// Error kinds surfaced by readers. A missing export file is reported as the
// wrapped fs error from opening it. All reader errors are fatal; callers
// surface them without retrying.
var (
	// ErrMalformedExport indicates the export file is not valid JSON or is
	// not shaped like a chat export.
	ErrMalformedExport = errors.New("malformed chat export")

	// ErrMissingField indicates a message entry lacks a required field.
	ErrMissingField = errors.New("missing required field")
)

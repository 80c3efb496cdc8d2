package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrManifestNotFound is returned when the manifest file does not exist.
	ErrManifestNotFound = errors.New("manifest not found")
	// ErrEmptyLine marks a blank manifest line.
	ErrEmptyLine = errors.New("empty or malformed line")
	// ErrInvalidFormat marks a line without the name,path separator.
	ErrInvalidFormat = errors.New("invalid format, expected name,path")
)

// MalformedLineError describes a manifest line that was skipped.
type MalformedLineError struct {
	Line   int    // 1-based position in the manifest
	Text   string // trimmed line content
	Reason error  // ErrEmptyLine or ErrInvalidFormat
}

func (e *MalformedLineError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Reason, e.Text)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Reason
}

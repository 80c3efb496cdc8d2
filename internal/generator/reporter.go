package generator

import (
	"errors"
	"fmt"
	"io"

	"github.com/aatumaykin/crabgen/internal/manifest"
)

// Reporter receives the user-facing events of a run in manifest order.
type Reporter interface {
	// Skipped is called for every malformed manifest line.
	Skipped(err *manifest.MalformedLineError)
	// Filtered is called for records excluded by the match pattern.
	Filtered(rec manifest.Record)
	// Generated is called after each artifact is written.
	Generated(path string)
}

// ConsoleReporter prints the classic one-line messages.
type ConsoleReporter struct {
	w      io.Writer
	dryRun bool
}

// NewConsoleReporter creates a reporter writing to w.
func NewConsoleReporter(w io.Writer, dryRun bool) *ConsoleReporter {
	return &ConsoleReporter{w: w, dryRun: dryRun}
}

func (r *ConsoleReporter) Skipped(err *manifest.MalformedLineError) {
	if errors.Is(err, manifest.ErrInvalidFormat) {
		fmt.Fprintf(r.w, "Error: Invalid format in line: '%s'. Expected format: 'script_name,script_path'\n", err.Text)
		return
	}
	fmt.Fprintf(r.w, "Warning: Empty or malformed line %d. Skipping.\n", err.Line)
}

func (r *ConsoleReporter) Filtered(rec manifest.Record) {
	fmt.Fprintf(r.w, "Skipping '%s': does not match filter.\n", rec.Name)
}

func (r *ConsoleReporter) Generated(path string) {
	if r.dryRun {
		fmt.Fprintf(r.w, "Would generate: %s\n", path)
		return
	}
	fmt.Fprintf(r.w, "Generated script: %s\n", path)
}

// NotFoundMessage formats the message shown when the manifest is missing.
func NotFoundMessage(path string) string {
	return fmt.Sprintf("Error: The file '%s' was not found.", path)
}

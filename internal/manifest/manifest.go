// Package manifest reads the dataset list that drives generation.
//
// A text manifest holds one record per line in the form
//
//	name,path
//
// Only the first comma separates the fields, so dataset paths may contain
// commas. Blank lines and lines without a comma are reported as
// *MalformedLineError entries and skipped by the caller; nothing else is
// validated and empty names or paths flow through unchanged.
//
// A manifest with a .yaml or .yml extension is read as a YAML list of
// {name, path} mappings instead.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Record is one dataset parsed from the manifest.
type Record struct {
	Line int
	Name string
	Path string
}

// Line is a raw manifest line with its 1-based number.
type Line struct {
	Number int
	Text   string
}

// Entry is one manifest position: either a Record or a parse error.
type Entry struct {
	Line   int
	Record Record
	Err    error
}

// Open reads the manifest at path and parses every position in order.
// A missing file is reported as ErrManifestNotFound.
func Open(path string) ([]Entry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return openYAML(path)
	}

	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(lines))
	for _, l := range lines {
		rec, err := ParseLine(l)
		entries = append(entries, Entry{Line: l.Number, Record: rec, Err: err})
	}
	return entries, nil
}

// ReadLines returns the raw lines of the file at path.
// A trailing newline does not produce an extra empty line.
func ReadLines(path string) ([]Line, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return data, nil
}

func splitLines(content string) []Line {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")

	raw := strings.Split(content, "\n")
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Number: i + 1, Text: text}
	}
	return lines
}

// ParseLine turns one raw line into a Record.
func ParseLine(l Line) (Record, error) {
	text := strings.TrimSpace(l.Text)
	if text == "" {
		return Record{}, &MalformedLineError{Line: l.Number, Reason: ErrEmptyLine}
	}

	name, path, ok := strings.Cut(text, ",")
	if !ok {
		return Record{}, &MalformedLineError{Line: l.Number, Text: text, Reason: ErrInvalidFormat}
	}

	return Record{
		Line: l.Number,
		Name: strings.TrimSpace(name),
		Path: strings.TrimSpace(path),
	}, nil
}

// Package workspace manages the output tree of a generation run.
//
// Every record gets its own directory under the output root, named after
// the record's base name. Directories are created on demand and existing
// ones are reused; artifact files are always overwritten in full, so a
// repeated run with the same manifest leaves identical content behind.
//
// Example usage:
//
//	ws := workspace.New("out/", false)
//	dir, err := ws.EnsureDatasetDir("DY_2018")
//	if err != nil {
//	    return err
//	}
//	err = ws.WriteArtifacts(dir, artifacts, func(path string) {
//	    fmt.Println("Generated script:", path)
//	})
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aatumaykin/crabgen/internal/render"
)

// Workspace represents the output root of a run.
type Workspace struct {
	root   string
	dryRun bool
}

// New creates a Workspace rooted at root. With dryRun set nothing is
// created or written, but paths are still computed and reported.
func New(root string, dryRun bool) *Workspace {
	return &Workspace{root: root, dryRun: dryRun}
}

// Root returns the output root as given.
func (w *Workspace) Root() string {
	return w.root
}

// DryRun reports whether the workspace skips filesystem changes.
func (w *Workspace) DryRun() bool {
	return w.dryRun
}

// DatasetDir returns the directory for a record base name.
func (w *Workspace) DatasetDir(baseName string) string {
	return filepath.Join(w.root, baseName)
}

// EnsureDatasetDir creates the directory for baseName if it doesn't exist.
func (w *Workspace) EnsureDatasetDir(baseName string) (string, error) {
	dir := w.DatasetDir(baseName)
	if w.dryRun {
		return dir, nil
	}
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// WriteArtifacts writes every artifact into dir, replacing existing files.
// onWrite, if not nil, is called after each file with its path.
// The first failure stops the remaining writes.
func (w *Workspace) WriteArtifacts(dir string, artifacts []render.Artifact, onWrite func(path string)) error {
	for _, a := range artifacts {
		path := filepath.Join(dir, a.FileName)
		if !w.dryRun {
			mode := a.Mode
			if mode == 0 {
				mode = 0644
			}
			if err := os.WriteFile(path, []byte(a.Content), mode); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
		if onWrite != nil {
			onWrite(path)
		}
	}
	return nil
}

// ensureDir creates path recursively. An existing directory is fine, an
// existing non-directory is an error.
func ensureDir(path string) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}

	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output path exists but is not a directory: %s", path)
		}
		return nil
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access output path %s: %w", path, err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", path, err)
	}

	return nil
}

package render

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// Template names, one per static artifact.
const (
	DriverTemplate  = "crab_script.py.tmpl"
	WrapperTemplate = "crab_script.sh.tmpl"
	PSetTemplate    = "PSet.py.tmpl"
)

var templateNames = []string{DriverTemplate, WrapperTemplate, PSetTemplate}

// loadTemplates parses the static artifact templates. A file with the same
// name in dir replaces the embedded one; dir may be empty.
func loadTemplates(dir string) (*template.Template, error) {
	root := template.New("artifacts").Option("missingkey=error")

	for _, name := range templateNames {
		text, err := readTemplate(dir, name)
		if err != nil {
			return nil, err
		}
		if _, err := root.New(name).Parse(string(text)); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	return root, nil
}

func readTemplate(dir, name string) ([]byte, error) {
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}
	}

	data, err := embedded.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded template %s: %w", name, err)
	}
	return data, nil
}

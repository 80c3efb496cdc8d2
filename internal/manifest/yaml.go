package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlRecord is one item of a YAML manifest:
//
//	- name: DY_2018
//	  path: /DYJetsToLL_M-50/RunIISummer20UL18MiniAODv2-v2/MINIAODSIM
type yamlRecord struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

func openYAML(path string) ([]Entry, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var items []yamlRecord
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse YAML manifest %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		n := i + 1
		name := strings.TrimSpace(item.Name)
		dsPath := strings.TrimSpace(item.Path)
		if name == "" && dsPath == "" {
			entries = append(entries, Entry{Line: n, Err: &MalformedLineError{Line: n, Reason: ErrEmptyLine}})
			continue
		}
		entries = append(entries, Entry{Line: n, Record: Record{Line: n, Name: name, Path: dsPath}})
	}
	return entries, nil
}

package constants

import (
	"strings"
	"testing"
)

func TestDefaultConfigPath(t *testing.T) {
	if DefaultConfigPath != "./crabgen.toml" {
		t.Errorf("DefaultConfigPath = %s, want './crabgen.toml'", DefaultConfigPath)
	}
}

func TestArtifactFileNames(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"driver", DriverFileName, "crab_script.py"},
		{"wrapper", WrapperFileName, "crab_script.sh"},
		{"pset", PSetFileName, "PSet.py"},
		{"prefix", ScriptPrefix, "crab_cfg_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.want {
				t.Errorf("%s = %s, want %s", tt.name, tt.value, tt.want)
			}
		})
	}

	if !strings.HasPrefix(PythonExt, ".") {
		t.Errorf("PythonExt should start with a dot, got %s", PythonExt)
	}
}

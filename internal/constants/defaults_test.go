package constants

import (
	"regexp"
	"strings"
	"testing"
)

func TestBuildDefaults(t *testing.T) {
	versionPattern := regexp.MustCompile(`^\d+\.\d+\.\d+(-[\w\.-]+)?$`)
	if !versionPattern.MatchString(DefaultVersion) {
		t.Errorf("DefaultVersion = %s, should follow semantic versioning (e.g. 0.1.0-dev)", DefaultVersion)
	}

	// Placeholders must stay consistent so ldflags overrides are easy to spot
	for i, value := range []string{DefaultBuildTime, DefaultGitCommit, DefaultGoVersion} {
		if value != "unknown" {
			t.Errorf("Default constant at index %d = %s, want 'unknown'", i, value)
		}
	}
}

func TestUsage(t *testing.T) {
	if !strings.HasPrefix(Usage, "Usage: crabgen ") {
		t.Errorf("Usage = %q, want prefix 'Usage: crabgen '", Usage)
	}
	if !strings.Contains(Usage, "<base_output_directory>") {
		t.Errorf("Usage should name the output directory argument, got %q", Usage)
	}
}

// Package version holds build metadata injected through -ldflags.
package version

import (
	"fmt"
	"strings"

	"github.com/aatumaykin/crabgen/internal/constants"
)

var (
	Version   = constants.DefaultVersion
	BuildTime = constants.DefaultBuildTime
	GitCommit = constants.DefaultGitCommit
	GoVersion = constants.DefaultGoVersion
)

// SetInfo переопределяет непустые значения метаданных сборки
func SetInfo(v, bt, gc, gv string) {
	if v != "" {
		Version = v
	}
	if bt != "" {
		BuildTime = bt
	}
	if gc != "" {
		GitCommit = gc
	}
	if gv != "" {
		GoVersion = gv
	}
}

// Format возвращает многострочное описание сборки для команды version
func Format() string {
	var sb strings.Builder
	sb.WriteString("crabgen - CRAB submission script generator\n")
	fmt.Fprintf(&sb, "Version: %s\n", Version)
	fmt.Fprintf(&sb, "Build Time: %s\n", BuildTime)
	fmt.Fprintf(&sb, "Git Commit: %s\n", GitCommit)
	fmt.Fprintf(&sb, "Go Version: %s\n", GoVersion)
	return sb.String()
}

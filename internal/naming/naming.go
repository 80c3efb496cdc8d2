// Package naming derives the file and directory names used for one record.
//
// ScriptName and ProcessBaseName are deliberately independent: the first
// only looks for a literal ".py" suffix while the second strips whatever
// final extension the name carries, so "ZZ.v2" keeps its dot in the script
// name but not in the directory name.
package naming

import (
	"os"
	"strings"

	"github.com/aatumaykin/crabgen/internal/constants"
)

// ScriptName returns the submission config file name for a record name,
// e.g. "DY_2018" and "DY_2018.py" both give "crab_cfg_DY_2018.py".
func ScriptName(name string) string {
	if !strings.HasSuffix(name, constants.PythonExt) {
		name += constants.PythonExt
	}
	return constants.ScriptPrefix + name
}

// ProcessBaseName returns the record name without its final extension.
// Dots leading the last path element do not start an extension.
func ProcessBaseName(name string) string {
	sep := strings.LastIndex(name, "/")
	dot := strings.LastIndex(name, ".")
	if dot <= sep {
		return name
	}

	for i := sep + 1; i < dot; i++ {
		if name[i] != '.' {
			return name[:dot]
		}
	}
	return name
}

// BaseOutputName flattens the output root into a single LFN token.
func BaseOutputName(outputRoot string) string {
	s := strings.TrimSpace(outputRoot)
	s = strings.ReplaceAll(s, "/", "")
	if os.PathSeparator != '/' {
		s = strings.ReplaceAll(s, string(os.PathSeparator), "")
	}
	return s
}

package constants

// DefaultConfigPath is the default path to the crabgen.toml file
const DefaultConfigPath = "./crabgen.toml"

// Artifact file names written into every dataset directory.
const (
	// ScriptPrefix is prepended to the submission config file name
	ScriptPrefix = "crab_cfg_"
	// PythonExt is the extension every submission config carries
	PythonExt = ".py"
	// DriverFileName is the post-processor driver executed inside the job
	DriverFileName = "crab_script.py"
	// WrapperFileName is the shell wrapper CRAB runs as scriptExe
	WrapperFileName = "crab_script.sh"
	// PSetFileName is the fake process configuration CRAB requires
	PSetFileName = "PSet.py"
)

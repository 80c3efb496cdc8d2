// Package config provides configuration loading and validation for crabgen.
// Every constant baked into the generated CRAB files lives here with a
// default that reproduces the reference output verbatim, so a run without
// a config file needs no setup at all.
//
// Configuration structure:
//   - [logging]: Logging level, format, and output
//   - [crab]: CRAB submission settings (plugin, DBS, splitting, storage)
//   - [skim]: Branch skim lists and the marker that selects real data
//   - [pset]: Fake PSet input/output settings
//   - [[lumi_mask]]: Ordered year tag → certification JSON table
//   - [templates]: Optional directory overriding the embedded script templates
//
// Environment variables:
// String values can reference ${VAR} or ${VAR:default}.
// For example: out_lfn_dir_base = "/store/user/${CRAB_USER:sungwon}/DY_Run2_UL_NanoAOD"
package config

// Config represents the main application configuration.
type Config struct {
	Logging   LoggingConfig   `toml:"logging"`
	Crab      CrabConfig      `toml:"crab"`
	Skim      SkimConfig      `toml:"skim"`
	PSet      PSetConfig      `toml:"pset"`
	LumiMasks []LumiMask      `toml:"lumi_mask"`
	Templates TemplatesConfig `toml:"templates"`
}

// LoggingConfig представляет конфигурацию логирования
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// CrabConfig представляет параметры секций JobType, Data и Site
type CrabConfig struct {
	PluginName    string `toml:"plugin_name"`
	InputDBS      string `toml:"input_dbs"`
	Splitting     string `toml:"splitting"`
	UnitsPerJob   int    `toml:"units_per_job"`
	OutLFNDirBase string `toml:"out_lfn_dir_base"`
	StorageSite   string `toml:"storage_site"`
}

// SkimConfig описывает списки веток для MC и данных
type SkimConfig struct {
	MCList     string `toml:"mc_list"`
	DataList   string `toml:"data_list"`
	DataMarker string `toml:"data_marker"`
	ListDir    string `toml:"list_dir"`
}

// PSetConfig представляет параметры фиктивного PSet.py
type PSetConfig struct {
	InputFile  string `toml:"input_file"`
	OutputFile string `toml:"output_file"`
	MaxEvents  int    `toml:"max_events"`
}

// LumiMask maps a data-taking year tag to its certification JSON.
// Entries are applied in table order.
type LumiMask struct {
	Tag string `toml:"tag"`
	URL string `toml:"url"`
}

// TemplatesConfig представляет конфигурацию шаблонов
type TemplatesConfig struct {
	Dir string `toml:"dir"`
}

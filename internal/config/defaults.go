package config

// Golden JSON certification files for the Run 2 UL re-reconstruction.
const (
	GoldenJSON2016 = "https://cms-service-dqmdc.web.cern.ch/CAF/certification/Collisions16/13TeV/Legacy_2016/Cert_271036-284044_13TeV_Legacy2016_Collisions16_JSON.txt"
	GoldenJSON2017 = "https://cms-service-dqmdc.web.cern.ch/CAF/certification/Collisions17/13TeV/Legacy_2017/Cert_294927-306462_13TeV_UL2017_Collisions17_GoldenJSON.txt"
	GoldenJSON2018 = "https://cms-service-dqmdc.web.cern.ch/CAF/certification/Collisions18/13TeV/Legacy_2018/Cert_314472-325175_13TeV_Legacy2018_Collisions18_JSON.txt"
)

// DefaultLumiMasks returns the Run 2 UL lumi-mask table in application order.
func DefaultLumiMasks() []LumiMask {
	return []LumiMask{
		{Tag: "2016", URL: GoldenJSON2016},
		{Tag: "2017", URL: GoldenJSON2017},
		{Tag: "2018", URL: GoldenJSON2018},
	}
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults применяет значения по умолчанию
func applyDefaults(c *Config) {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}

	if c.Crab.PluginName == "" {
		c.Crab.PluginName = "Analysis"
	}
	if c.Crab.InputDBS == "" {
		c.Crab.InputDBS = "global"
	}
	if c.Crab.Splitting == "" {
		c.Crab.Splitting = "FileBased"
	}
	if c.Crab.UnitsPerJob == 0 {
		c.Crab.UnitsPerJob = 1
	}
	if c.Crab.OutLFNDirBase == "" {
		c.Crab.OutLFNDirBase = "/store/user/sungwon/DY_Run2_UL_NanoAOD"
	}
	if c.Crab.StorageSite == "" {
		c.Crab.StorageSite = "T3_KR_KNU"
	}

	if c.Skim.MCList == "" {
		c.Skim.MCList = "Run2_UL_SkimList_MC"
	}
	if c.Skim.DataList == "" {
		c.Skim.DataList = "Run2_UL_SkimList_Data"
	}
	if c.Skim.DataMarker == "" {
		c.Skim.DataMarker = "SingleMuon"
	}
	if c.Skim.ListDir == "" {
		c.Skim.ListDir = "../.."
	}

	if c.PSet.InputFile == "" {
		c.PSet.InputFile = "../../NanoAOD/test/lzma.root"
	}
	if c.PSet.OutputFile == "" {
		c.PSet.OutputFile = "tree.root"
	}
	// 0 событий не имеет смысла, -1 означает "все"
	if c.PSet.MaxEvents == 0 {
		c.PSet.MaxEvents = -1
	}

	if len(c.LumiMasks) == 0 {
		c.LumiMasks = DefaultLumiMasks()
	}
}

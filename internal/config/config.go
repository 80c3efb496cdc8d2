package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aatumaykin/crabgen/internal/constants"
)

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	applyDefaults(&cfg)
	expandEnvVars(&cfg)

	return &cfg, nil
}

// LoadOrDefault loads path when it is set. With an empty path it tries
// constants.DefaultConfigPath and falls back to built-in defaults when that
// file does not exist. It returns the path actually used ("" for defaults).
func LoadOrDefault(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	if _, err := os.Stat(constants.DefaultConfigPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), "", nil
		}
		return nil, "", fmt.Errorf("failed to access config file: %w", err)
	}

	cfg, err := Load(constants.DefaultConfigPath)
	return cfg, constants.DefaultConfigPath, err
}

// Encode пишет конфигурацию в формате TOML
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate проверяет валидность конфигурации
func (c *Config) Validate() []error {
	var errs []error

	// Проверка logging config
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Errorf("invalid logging.level: %s (expected: debug, info, warn, error)", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Errorf("invalid logging.format: %s (expected: json, text)", c.Logging.Format))
	}
	if c.Logging.Output == "" {
		errs = append(errs, fmt.Errorf("logging.output is required"))
	}

	// Проверка CRAB
	if !validSplitting[c.Crab.Splitting] {
		errs = append(errs, fmt.Errorf("invalid crab.splitting: %s (expected one of: %s)", c.Crab.Splitting, splittingNames()))
	}
	if c.Crab.UnitsPerJob < 1 {
		errs = append(errs, fmt.Errorf("crab.units_per_job must be >= 1 (got %d)", c.Crab.UnitsPerJob))
	}
	if err := validateLFN(c.Crab.OutLFNDirBase); err != nil {
		errs = append(errs, err)
	}
	if err := validateSite(c.Crab.StorageSite); err != nil {
		errs = append(errs, err)
	}
	if c.Crab.PluginName == "" {
		errs = append(errs, fmt.Errorf("crab.plugin_name is required"))
	}
	if c.Crab.InputDBS == "" {
		errs = append(errs, fmt.Errorf("crab.input_dbs is required"))
	}

	// Проверка skim
	if c.Skim.MCList == "" || c.Skim.DataList == "" {
		errs = append(errs, fmt.Errorf("skim.mc_list and skim.data_list are required"))
	}
	if c.Skim.DataMarker == "" {
		errs = append(errs, fmt.Errorf("skim.data_marker is required"))
	}

	if c.PSet.MaxEvents < -1 {
		errs = append(errs, fmt.Errorf("pset.max_events must be -1 or positive (got %d)", c.PSet.MaxEvents))
	}

	// Проверка lumi masks
	seen := make(map[string]bool, len(c.LumiMasks))
	for i, m := range c.LumiMasks {
		if m.Tag == "" {
			errs = append(errs, fmt.Errorf("lumi_mask[%d].tag is required", i))
		} else if seen[m.Tag] {
			errs = append(errs, fmt.Errorf("lumi_mask[%d].tag %q is duplicated", i, m.Tag))
		}
		seen[m.Tag] = true
		if m.URL == "" {
			errs = append(errs, fmt.Errorf("lumi_mask[%d].url is required", i))
		}
	}

	if c.Templates.Dir != "" {
		if info, err := os.Stat(c.Templates.Dir); err != nil {
			errs = append(errs, fmt.Errorf("templates.dir is not accessible: %w", err))
		} else if !info.IsDir() {
			errs = append(errs, fmt.Errorf("templates.dir is not a directory: %s", c.Templates.Dir))
		}
	}

	return errs
}

// =============================================================================
// FIRE 1099 Converter - Configuration Module
// =============================================================================
//
// This module loads the optional application configuration. Everything in it
// can also be set per run with command-line flags; flags win over the file,
// and the file wins over the built-in defaults.
//
// CONFIGURATION FILE (YAML):
//   output_dir:  directory for generated FIRE files (default: input's dir)
//   debug:       dump the aggregated tree before encoding (default: false)
//   report_file: path for the XLSX summary workbook (default: none)
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// OutputDir is the directory where generated FIRE files are placed when
	// no explicit output path is given. Empty means "next to the input".
	OutputDir string `yaml:"output_dir"`

	// Debug dumps the aggregated master tree as JSON before encoding.
	Debug bool `yaml:"debug"`

	// ReportFile, when set, is where the XLSX summary workbook is written
	// after every successful conversion.
	ReportFile string `yaml:"report_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{}
}

// Load reads the configuration from a YAML file. A missing file is not an
// error - the defaults apply - so the tool runs with no setup at all.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

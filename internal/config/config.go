// SPDX-License-Identifier: MIT

// Package config loads the snowball run configuration.
//
// Sources are layered, later ones winning:
//
//  1. built-in defaults
//  2. a YAML file (--config, else ./snowball.yaml or ./snowball.yml)
//  3. SNOWBALL_* environment variables (SNOWBALL_NUM_WAVES → num_waves)
//  4. command-line values: positional arguments and explicitly set flags
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SNOWBALL_"

// Defaults for optional settings.
const (
	DefaultWorkers   = 1
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds every setting of a sampling run.
type Config struct {
	Network   string `koanf:"network"`
	Directed  bool   `koanf:"directed"`
	OutputDir string `koanf:"output_dir"`

	NumSamples int `koanf:"num_samples"`
	NumSeeds   int `koanf:"num_seeds"`
	NumWaves   int `koanf:"num_waves"`

	// RandSeed 0 means "derive from the clock"; the value used is logged.
	RandSeed      uint64        `koanf:"rand_seed"`
	Workers       int           `koanf:"workers"`
	SampleTimeout time.Duration `koanf:"sample_timeout"`
	ZoneHeader    bool          `koanf:"zone_header"`

	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`
	MetricsFile string `koanf:"metrics_file"`

	// Source is the config file that was read, if any.
	Source string `koanf:"-"`
}

// Defaults returns the built-in default values keyed by config key.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"directed":       false,
		"num_waves":      0,
		"rand_seed":      0,
		"workers":        DefaultWorkers,
		"sample_timeout": "0s",
		"zone_header":    true,
		"log_level":      DefaultLogLevel,
		"log_format":     DefaultLogFormat,
		"metrics_file":   "",
	}
}

// findConfigFile returns explicit if set, else the first default file present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"snowball.yaml", "snowball.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// Load resolves the configuration from all sources. args holds values taken
// from positional arguments (keyed like the file); flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet, args map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	// 2. Config file
	source := findConfigFile(cfgFile)
	if source != "" {
		if err := k.Load(file.Provider(source), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", source, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	// 4. Positional arguments, then flags the user actually set
	if len(args) > 0 {
		if err := k.Load(confmap.Provider(args, "."), nil); err != nil {
			return nil, fmt.Errorf("config: load arguments: %w", err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Source = source

	return &cfg, nil
}

// Package config loads mechsize settings with viper: built-in defaults, then
// an optional mechsize.yaml, then MECHSIZE_* environment variables, then
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys
const (
	KeyLogLevel        = "log.level"
	KeyStorePath       = "store.path"
	KeyOutputJSON      = "output.json"
	KeyScrewEfficiency = "screw.efficiency"
	KeyWatchDebounce   = "watch.debounce"
)

// EnvPrefix is prepended to upper-cased keys with dots replaced by
// underscores: store.path is read from MECHSIZE_STORE_PATH.
const EnvPrefix = "MECHSIZE"

// flagKeys maps persistent command-line flags to the keys they override.
var flagKeys = map[string]string{
	"log-level": KeyLogLevel,
	"store":     KeyStorePath,
	"json":      KeyOutputJSON,
}

// Config is the effective configuration.
type Config struct {
	LogLevel        string        `json:"log_level"`
	StorePath       string        `json:"store_path"`
	OutputJSON      bool          `json:"output_json"`
	ScrewEfficiency float64       `json:"screw_efficiency"`
	WatchDebounce   time.Duration `json:"watch_debounce"`

	// File is the config file that was read, empty when none was found.
	File string `json:"file,omitempty"`
}

// Load reads the configuration. path names an explicit config file; when
// empty, mechsize.yaml is looked up in the user config dir and then the
// working directory, and a missing file is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	paths := DefaultPaths()

	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyStorePath, paths.Store)
	v.SetDefault(KeyOutputJSON, false)
	v.SetDefault(KeyScrewEfficiency, 0.9)
	v.SetDefault(KeyWatchDebounce, "100ms")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("mechsize")
		v.SetConfigType("yaml")
		v.AddConfigPath(paths.ConfigDir)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		LogLevel:        v.GetString(KeyLogLevel),
		StorePath:       v.GetString(KeyStorePath),
		OutputJSON:      v.GetBool(KeyOutputJSON),
		ScrewEfficiency: v.GetFloat64(KeyScrewEfficiency),
		WatchDebounce:   v.GetDuration(KeyWatchDebounce),
		File:            v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that viper cannot express.
func (c *Config) Validate() error {
	if !(c.ScrewEfficiency > 0 && c.ScrewEfficiency <= 1) {
		return fmt.Errorf("%s must be in (0, 1], got %g", KeyScrewEfficiency, c.ScrewEfficiency)
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("%s must be > 0, got %s", KeyWatchDebounce, c.WatchDebounce)
	}
	if c.StorePath == "" {
		return fmt.Errorf("%s is empty", KeyStorePath)
	}
	return nil
}

// Package config resolves generator settings from defaults, a config file,
// PROTOC_GEN_OBJC_* environment variables, command-line flags and protoc
// plugin parameters.
package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/goatx/protoc-gen-objc/objc"
)

const EnvPrefix = "PROTOC_GEN_OBJC"

// Keys
const (
	KeyOutputDir = "output_dir"
	KeyBundle    = "bundle"
	KeyFilter    = "filter"
	KeyJobs      = "jobs"
	KeyLogJSON   = "log.json"
	KeyLogLevel  = "log.level"
)

type Config struct {
	OutputDir string    `mapstructure:"output_dir"`
	Bundle    string    `mapstructure:"bundle"`
	Filter    []string  `mapstructure:"filter"`
	Jobs      int       `mapstructure:"jobs"`
	Log       LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyBundle, "")
	v.SetDefault(KeyFilter, []string{})
	v.SetDefault(KeyJobs, 4)
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyLogLevel, "warn")
}

// ReadFile merges the config file at path into v. The format follows the
// file extension.
func ReadFile(v *viper.Viper, path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch ext {
	case "yaml", "yml", "toml", "json":
	default:
		return errors.WithHint(
			errors.Newf("unsupported config file %s", path),
			"use a .yaml, .toml or .json file")
	}
	v.SetConfigFile(path)
	v.SetConfigType(ext)
	if err := v.MergeInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	return nil
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return errors.Newf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}

// Options returns the generator options derived from c.
func (c *Config) Options() objc.Options {
	return objc.Options{Filter: objc.NewFilter(c.Filter...)}
}

// ApplyParameter sets one protoc plugin parameter (--objc_opt=name=value).
// filter takes a "+"-separated list of patterns.
func ApplyParameter(v *viper.Viper, name, value string) error {
	switch name {
	case "filter":
		var patterns []string
		for _, p := range strings.Split(value, "+") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		v.Set(KeyFilter, patterns)
	case "log_level":
		v.Set(KeyLogLevel, value)
	case "log_json":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "invalid value for log_json: %q", value)
		}
		v.Set(KeyLogJSON, b)
	case "jobs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "invalid value for jobs: %q", value)
		}
		v.Set(KeyJobs, n)
	default:
		return errors.Newf("unknown parameter %q", name)
	}
	return nil
}

// ApplyParameters parses a comma-separated plugin parameter string.
func ApplyParameters(v *viper.Viper, parameter string) error {
	for _, kv := range strings.Split(parameter, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		name, value, _ := strings.Cut(kv, "=")
		if err := ApplyParameter(v, name, value); err != nil {
			return err
		}
	}
	return nil
}

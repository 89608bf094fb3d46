// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable read by [Load].
const EnvVar = "LEDGERWIRE_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for interactive use on a workstation.
	Development Environment = "development"
	// Production is for scripted use in pipelines and services.
	Production Environment = "production"
)

// Log formats.
const (
	// LogFormatAuto selects text when stderr is a terminal and JSON
	// otherwise.
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Output formats for command reports.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the master configuration for ledgerwire.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`

	// Output configures how command reports are printed.
	Output OutputConfig `yaml:"output"`

	// Per-environment overrides, applied after the base values.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Log    *LogConfig    `yaml:"log,omitempty"`
	Output *OutputConfig `yaml:"output,omitempty"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is a slog level name: debug, info, warn, error.
	// Default: info (development), warn (production)
	Level string `yaml:"level"`

	// Format is auto, text or json.
	// Default: auto (development), json (production)
	Format string `yaml:"format"`

	// File receives log output instead of stderr when set.
	File string `yaml:"file"`
}

// OutputConfig configures report printing.
type OutputConfig struct {
	// Format is json or yaml.
	// Default: json
	Format string `yaml:"format"`

	// Indent is the number of spaces per nesting level.
	// Default: 2
	Indent int `yaml:"indent"`
}

// Default returns the default configuration. It is the base that a
// config file is merged into, and the whole configuration when no file
// is named.
func Default() *Config {
	return &Config{
		Environment: Development,
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatAuto,
		},
		Output: OutputConfig{
			Format: OutputJSON,
			Indent: 2,
		},
	}
}

// Load loads configuration from the file named by LEDGERWIRE_CONFIG.
// It fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your ledgerwire.yaml config file, or use --config flag", EnvVar)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds a configuration from YAML content: defaults, then the
// document, then the environment's overrides, then variable expansion.
// Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// Resolve returns the configuration named by flagPath, or by
// LEDGERWIRE_CONFIG when flagPath is empty, or the defaults when
// neither is set. The returned configuration has been validated.
func Resolve(flagPath string) (*Config, error) {
	var cfg *Config
	var err error
	switch {
	case flagPath != "":
		cfg, err = LoadFile(flagPath)
	case os.Getenv(EnvVar) != "":
		cfg, err = Load()
	default:
		cfg = Default()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
		// Production defaults: machine-readable, quieter logs. They
		// only replace log settings the file left at their defaults.
		if overrides == nil {
			defaults := Default()
			implicit := &LogConfig{}
			if c.Log.Level == defaults.Log.Level {
				implicit.Level = "warn"
			}
			if c.Log.Format == defaults.Log.Format {
				implicit.Format = LogFormatJSON
			}
			overrides = &ConfigOverrides{Log: implicit}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Log != nil {
		if overrides.Log.Level != "" {
			c.Log.Level = overrides.Log.Level
		}
		if overrides.Log.Format != "" {
			c.Log.Format = overrides.Log.Format
		}
		if overrides.Log.File != "" {
			c.Log.File = overrides.Log.File
		}
	}

	if overrides.Output != nil {
		if overrides.Output.Format != "" {
			c.Output.Format = overrides.Output.Format
		}
		if overrides.Output.Indent != 0 {
			c.Output.Indent = overrides.Output.Indent
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	c.Log.File = expandVars(c.Log.File)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} from the process
// environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks the configuration for errors. Every problem is
// reported, each naming its field.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("environment: invalid value %q (want development or production)", c.Environment))
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	logFormats := []string{LogFormatAuto, LogFormatText, LogFormatJSON}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", logFormats))
	}

	outputFormats := []string{OutputJSON, OutputYAML}
	if !slices.Contains(outputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of: %v", outputFormats))
	}

	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		errs = append(errs, fmt.Errorf("output.indent must be between 0 and 8, got %d", c.Output.Indent))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, err
	}
	return level, nil
}

// SPDX-License-Identifier: MIT

// Package config loads the mathrobo CLI configuration from defaults, an
// optional TOML file and MATHROBO_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// MATHROBO_LOG_LEVEL or MATHROBO_OUTPUT_PRECISION.
const EnvPrefix = "MATHROBO"

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the effective CLI configuration.
type Config struct {
	Log       LogConfig    `mapstructure:"log"`
	Output    OutputConfig `mapstructure:"output"`
	Bench     BenchConfig  `mapstructure:"bench"`
	Tolerance float64      `mapstructure:"tolerance"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Timestamps adds a timestamp to every log line.
	Timestamps bool `mapstructure:"timestamps"`
}

// OutputConfig controls how matrices and vectors are printed.
type OutputConfig struct {
	// Precision is the number of digits after the decimal point.
	Precision int `mapstructure:"precision"`
}

// BenchConfig controls the bench command.
type BenchConfig struct {
	Iterations int `mapstructure:"iterations"`
	Workers    int `mapstructure:"workers"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Log:       LogConfig{Level: "info"},
		Output:    OutputConfig{Precision: 6},
		Bench:     BenchConfig{Iterations: 100000, Workers: 4},
		Tolerance: 1e-9,
	}
}

// Load resolves the configuration. An empty path skips the config file;
// a non-empty path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.timestamps", defaults.Log.Timestamps)
	v.SetDefault("output.precision", defaults.Output.Precision)
	v.SetDefault("bench.iterations", defaults.Bench.Iterations)
	v.SetDefault("bench.workers", defaults.Bench.Workers)
	v.SetDefault("tolerance", defaults.Tolerance)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges that the decoder cannot express.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("%w: output.precision %d not in [0,17]", ErrInvalidConfig, c.Output.Precision)
	}
	if c.Bench.Iterations <= 0 {
		return fmt.Errorf("%w: bench.iterations must be positive", ErrInvalidConfig)
	}
	if c.Bench.Workers <= 0 {
		return fmt.Errorf("%w: bench.workers must be positive", ErrInvalidConfig)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance must be finite and non-negative", ErrInvalidConfig)
	}

	return nil
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}

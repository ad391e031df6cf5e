// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of a genesim run and wires the
// simulation objects it describes.
//
// Precedence, lowest first: Default(), the YAML file, environment variables
// (GENESIM_SEED, GENESIM_LOG_LEVEL). The merged result is validated before use.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genesim/measure"
)

// Environment overrides.
const (
	EnvSeed     = "GENESIM_SEED"
	EnvLogLevel = "GENESIM_LOG_LEVEL"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root of the YAML document.
type Config struct {
	// Seed of the root random source; 0 selects rng.DefaultSeed.
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	Graph       GraphConfig       `yaml:"graph"`
	Glass       GlassConfig       `yaml:"glass"`
	Initializer InitializerConfig `yaml:"initializer"`
	Measurement measure.Params    `yaml:"measurement"`
	Output      OutputConfig      `yaml:"output"`
}

// GraphConfig describes the random lag graph.
type GraphConfig struct {
	NumFactors          int     `yaml:"num_factors" validate:"gte=1"`
	Prefix              string  `yaml:"prefix" validate:"required,alpha"`
	Randomizer          string  `yaml:"randomizer" validate:"oneof=simple previous_step_only"`
	Indegree            int     `yaml:"indegree" validate:"gte=2"`
	Policy              string  `yaml:"policy" validate:"oneof=constant max mean"`
	MaxLag              int     `yaml:"max_lag" validate:"gte=1"`
	PercentHousekeeping float64 `yaml:"percent_housekeeping" validate:"gte=0,lte=100"`
}

// GlassConfig holds the Glass update parameters.
type GlassConfig struct {
	DecayRate            float64 `yaml:"decay_rate" validate:"gt=0,lte=1"`
	BooleanInfluenceRate float64 `yaml:"boolean_influence_rate" validate:"gt=0"`
	BasalExpression      float64 `yaml:"basal_expression"`
	LowerBound           float64 `yaml:"lower_bound" validate:"ltfield=BasalExpression"`
	MaxRandomizeAttempts int     `yaml:"max_randomize_attempts" validate:"gte=0"`

	// Noise selects the per-step error distribution; both kinds are centered
	// at 0 with standard deviation NoiseStdDev.
	Noise       string  `yaml:"noise" validate:"oneof=normal uniform"`
	NoiseStdDev float64 `yaml:"noise_std_dev" validate:"gte=0"`
}

// InitializerConfig holds the basal initializer parameters; the basal level
// is shared with the Glass section.
type InitializerConfig struct {
	InitStdDev float64 `yaml:"init_std_dev" validate:"gt=0"`
}

// OutputConfig names the output files; an empty measured path means stdout,
// an empty raw path skips the raw export.
type OutputConfig struct {
	MeasuredPath string `yaml:"measured_path"`
	RawPath      string `yaml:"raw_path"`
}

// Default returns a complete, valid configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Graph: GraphConfig{
			NumFactors:          10,
			Prefix:              "G",
			Randomizer:          "simple",
			Indegree:            3,
			Policy:              "constant",
			MaxLag:              2,
			PercentHousekeeping: 20,
		},
		Glass: GlassConfig{
			DecayRate:            0.1,
			BooleanInfluenceRate: 0.5,
			BasalExpression:      0,
			LowerBound:           -1,
			Noise:                "normal",
			NoiseStdDev:          0.05,
		},
		Initializer: InitializerConfig{InitStdDev: 0.1},
		Measurement: measure.Defaults(),
	}
}

// Load merges Default(), the YAML file at path (skipped when path is empty or
// the file does not exist) and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return nil
}

// Validate checks struct tags and the measurement parameters.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Measurement.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SlogLevel maps LogLevel onto slog; unknown values map to Info.
func (c Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the lbtable tool: which
// heuristic to build, the traverse options of each search, and logging.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lowerbound/core"
	"github.com/katalvlaran/lowerbound/heuristic"
	"github.com/katalvlaran/lowerbound/lowerbound"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Heuristic HeuristicConfig `yaml:"heuristic"`
	Traverse  TraverseConfig  `yaml:"traverse"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// HeuristicConfig selects and tunes the heuristic.
type HeuristicConfig struct {
	Kind          string `yaml:"kind"`           // lowerbound, euclidean, zero
	CollapseModes bool   `yaml:"collapse_modes"` // one arc per group pair in the lower-bound graph
	Warm          bool   `yaml:"warm"`           // build both directions up front
}

// TraverseConfig mirrors core.TraverseOptions. Speeds are in m/s.
type TraverseConfig struct {
	ArriveBy     bool     `yaml:"arrive_by"`
	Modes        []string `yaml:"modes"`
	WalkSpeed    float64  `yaml:"walk_speed"`
	BikeSpeed    float64  `yaml:"bike_speed"`
	CarSpeed     float64  `yaml:"car_speed"`
	TransitSpeed float64  `yaml:"transit_speed"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Heuristic: HeuristicConfig{Kind: heuristic.KindLowerBound.String()},
		Traverse: TraverseConfig{
			Modes:        []string{"all"},
			WalkSpeed:    core.DefaultWalkSpeed,
			BikeSpeed:    core.DefaultBikeSpeed,
			CarSpeed:     core.DefaultCarSpeed,
			TransitSpeed: core.DefaultTransitSpeed,
		},
		Logging: LoggingConfig{Level: "info", Encoding: "json"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// LBTABLE_HEURISTIC and LBTABLE_LOG_LEVEL override the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.applyEnvOverrides()
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if kind := os.Getenv("LBTABLE_HEURISTIC"); kind != "" {
		c.Heuristic.Kind = kind
	}
	if level := os.Getenv("LBTABLE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if _, err := heuristic.ParseKind(c.Heuristic.Kind); err != nil {
		return fmt.Errorf("%w: heuristic.kind: %v", ErrInvalid, err)
	}
	if _, err := core.ParseModes(c.Traverse.Modes); err != nil {
		return fmt.Errorf("%w: traverse.modes: %v", ErrInvalid, err)
	}
	speeds := []struct {
		name string
		v    float64
	}{
		{"walk_speed", c.Traverse.WalkSpeed},
		{"bike_speed", c.Traverse.BikeSpeed},
		{"car_speed", c.Traverse.CarSpeed},
		{"transit_speed", c.Traverse.TransitSpeed},
	}
	for _, s := range speeds {
		if s.v < 0 || math.IsNaN(s.v) {
			return fmt.Errorf("%w: traverse.%s=%v", ErrInvalid, s.name, s.v)
		}
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	switch c.Logging.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.encoding=%q (valid: json, console)", ErrInvalid, c.Logging.Encoding)
	}

	return nil
}

// HeuristicKind returns the parsed heuristic kind. Call Validate first.
func (c *Config) HeuristicKind() heuristic.Kind {
	k, _ := heuristic.ParseKind(c.Heuristic.Kind)
	return k
}

// BuildOptions returns the lower-bound build options the config asks for.
func (c *Config) BuildOptions() []lowerbound.BuildOption {
	if c.Heuristic.CollapseModes {
		return []lowerbound.BuildOption{lowerbound.WithCollapsedModes()}
	}

	return nil
}

// TraverseOptions converts the traverse section. Call Validate first.
func (c *Config) TraverseOptions() core.TraverseOptions {
	modes, _ := core.ParseModes(c.Traverse.Modes)

	return core.TraverseOptions{
		ArriveBy:     c.Traverse.ArriveBy,
		Modes:        modes,
		WalkSpeed:    c.Traverse.WalkSpeed,
		BikeSpeed:    c.Traverse.BikeSpeed,
		CarSpeed:     c.Traverse.CarSpeed,
		TransitSpeed: c.Traverse.TransitSpeed,
	}
}

// Build returns a production zap logger at the configured level and
// encoding. verbose forces debug.
func (l LoggingConfig) Build(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = strings.ToLower(l.Encoding)
	if zc.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return zc.Build()
}

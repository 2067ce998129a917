// SPDX-License-Identifier: MIT
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn          ("0","1","2",...)
//   • rng       = nil                  (pure unless seeded)
//   • weightFn  = DefaultWeightFn      (constant DefaultEdgeWeight)
//   • modes     = core.Walk|core.Bicycle|core.Car (streets)
//   • stopHop   = DefaultStopHop       (transit seconds per grid block)
//   • origin    = (DefaultOriginLat, DefaultOriginLon)
//   • spacing   = DefaultSpacing       (meters between neighbors)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lowerbound/core"
)

// Layout and weight defaults.
const (
	DefaultOriginLat = 45.5017 // degrees
	DefaultOriginLon = -73.5673
	DefaultSpacing   = 100.0 // meters
	DefaultStopHop   = 15.0  // seconds per block on transit
	streetModes      = core.Walk | core.Bicycle | core.Car
)

// metersPerDegreeLat is the length of one degree of latitude.
const metersPerDegreeLat = 111195.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	modes    core.Mode
	stopHop  float64

	originLat, originLon float64
	spacing              float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		weightFn:  DefaultWeightFn,
		modes:     streetModes,
		stopHop:   DefaultStopHop,
		originLat: DefaultOriginLat,
		originLon: DefaultOriginLon,
		spacing:   DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// coordAt places grid cell (row, col) north and east of the origin.
func (c builderConfig) coordAt(row, col int) core.VertexOption {
	step := c.spacing / metersPerDegreeLat
	return core.WithCoord(c.originLat+float64(row)*step, c.originLon+float64(col)*step)
}

// weight draws one edge weight from the configured generator.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }

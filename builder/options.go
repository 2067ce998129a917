// SPDX-License-Identifier: MIT
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lowerbound/core"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the street edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithModes sets the modes allowed on street edges. Panics on an empty mask.
func WithModes(m core.Mode) BuilderOption {
	if m&core.AllModes == 0 {
		panic("builder: WithModes(empty mask)")
	}
	return func(c *builderConfig) { c.modes = m & core.AllModes }
}

// WithStopHop sets the transit weight of one grid block. Panics if hop is
// negative or NaN.
func WithStopHop(hop float64) BuilderOption {
	if math.IsNaN(hop) || hop < 0 {
		panic("builder: WithStopHop(hop<0)")
	}
	return func(c *builderConfig) { c.stopHop = hop }
}

// WithOrigin sets the coordinate of vertex (0,0).
func WithOrigin(lat, lon float64) BuilderOption {
	return func(c *builderConfig) { c.originLat, c.originLon = lat, lon }
}

// WithSpacing sets the distance between neighboring corners in meters.
// Panics if meters <= 0.
func WithSpacing(meters float64) BuilderOption {
	if math.IsNaN(meters) || meters <= 0 {
		panic("builder: WithSpacing(meters<=0)")
	}
	return func(c *builderConfig) { c.spacing = meters }
}

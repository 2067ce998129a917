// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for the dense Dijkstra kernel.
//
// Options:
//
//	– Seeds:            starting nodes with their initial costs.
//	– Modes:            arc mode filter (default core.AllModes).
//	– ReturnPath:       if true, return the predecessor slice.
//	– MaxDistance:      optional cap on distances to explore.
//	– InfEdgeThreshold: arcs with weight >= this threshold are impassable.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lowerbound/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil Adjacency was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSeedOutOfRange indicates a seed node outside 0..Order()-1.
	ErrSeedOutOfRange = errors.New("dijkstra: seed node out of range")

	// ErrNegativeWeight indicates a negative or NaN seed cost or arc weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all arcs (including zero-weight arcs) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoPredecessor marks a node without a predecessor in the prev slice
// (a seed, or an unreachable node).
const NoPredecessor = -1

// Arc is a weighted, mode-labelled connection to node To.
type Arc struct {
	To     int
	Weight float64
	Modes  core.Mode
}

// Adjacency is a dense, index-addressed weighted digraph.
//
// Arcs(u) lists the arcs relaxed when u is settled. Implementations must
// return the same arcs in the same order for the lifetime of a Run.
type Adjacency interface {
	Order() int
	Arcs(u int) []Arc
}

// Seed is a starting node and its initial cost.
type Seed struct {
	Node int
	Cost float64
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Seeds            []Seed    // starting nodes; duplicates keep the cheapest cost
	Modes            core.Mode // arcs must share at least one of these modes
	ReturnPath       bool      // whether to return the predecessor slice
	MaxDistance      float64   // maximum distance to explore
	InfEdgeThreshold float64   // weight threshold at or above which arcs are skipped
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithSeed adds a starting node with the given initial cost.
func WithSeed(node int, cost float64) Option {
	return func(o *Options) {
		o.Seeds = append(o.Seeds, Seed{Node: node, Cost: cost})
	}
}

// WithSeeds adds several starting nodes at once.
func WithSeeds(seeds ...Seed) Option {
	return func(o *Options) {
		o.Seeds = append(o.Seeds, seeds...)
	}
}

// WithModes restricts relaxation to arcs sharing a mode with m.
// An empty mask is treated as core.AllModes.
func WithModes(m core.Mode) Option {
	return func(o *Options) {
		if m&core.AllModes == 0 {
			m = core.AllModes
		}
		o.Modes = m
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value stay at +Inf.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if math.IsNaN(max) || max < 0 {
		// In Go, panic in Option constructors is acceptable for invalid arguments.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which arcs are
// considered non-traversable. Panics with ErrBadInfThreshold if threshold <= 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no seeds, every mode, no predecessor slice, no distance cap, and only
// +Inf arcs impassable.
func DefaultOptions() Options {
	return Options{
		Modes:            core.AllModes,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

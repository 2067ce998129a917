// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Orientation, sentinel errors and build options.

package lowerbound

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lowerbound/core"
)

// Sentinel errors for building and sweeping lower-bound graphs.
var (
	// ErrNilGraph is returned when Build receives a nil graph.
	ErrNilGraph = errors.New("lowerbound: graph is nil")

	// ErrEmptyGraph is returned when the source graph has no vertices.
	ErrEmptyGraph = errors.New("lowerbound: graph has no vertices")

	// ErrNegativeWeight is returned for an edge with a negative weight.
	ErrNegativeWeight = errors.New("lowerbound: negative edge weight")

	// ErrNaNWeight is returned for an edge whose weight is NaN.
	ErrNaNWeight = errors.New("lowerbound: NaN edge weight")

	// ErrBadDirection is returned for a Direction other than DepartAt or ArriveBy.
	ErrBadDirection = errors.New("lowerbound: unknown direction")

	// ErrNilTarget is returned when SSSP is asked to sweep from nothing.
	ErrNilTarget = errors.New("lowerbound: target is nil")

	// ErrGroupOutOfRange is returned when a target or link points at a group
	// the lower-bound graph does not have (the source graph grew after Build).
	ErrGroupOutOfRange = errors.New("lowerbound: group index out of range")
)

// Direction is the search orientation a lower-bound graph is built for.
type Direction uint8

const (
	// DepartAt searches forward from the origin; bounds are cost(group → target).
	DepartAt Direction = iota
	// ArriveBy searches backward from the destination; bounds are cost(target → group).
	ArriveBy
)

// Directions lists every valid Direction, in index order.
var Directions = [...]Direction{DepartAt, ArriveBy}

// DirectionOf returns the orientation requested by opts.
func DirectionOf(opts core.TraverseOptions) Direction {
	if opts.ArriveBy {
		return ArriveBy
	}

	return DepartAt
}

// Valid reports whether d is DepartAt or ArriveBy.
func (d Direction) Valid() bool { return d == DepartAt || d == ArriveBy }

// String returns "depart_at", "arrive_by", or "direction(n)" for invalid values.
func (d Direction) String() string {
	switch d {
	case DepartAt:
		return "depart_at"
	case ArriveBy:
		return "arrive_by"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	collapseModes bool
}

// WithCollapsedModes keeps a single arc per pair of groups: the minimum weight
// over every edge between them, labelled with the union of their modes.
// The graph is smaller, and bounds stay admissible, but a restricted-mode
// sweep may use a weight that only another mode achieves.
func WithCollapsedModes() BuildOption {
	return func(c *buildConfig) { c.collapseModes = true }
}

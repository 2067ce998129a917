// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Traversal modes and the per-request traverse options that the
// search-options collaborator hands to heuristics unchanged.

package core

import (
	"fmt"
	"math"
	"strings"
)

// Mode is a bitmask of traversal modes.
type Mode uint8

// Traversal modes.
const (
	Walk Mode = 1 << iota
	Bicycle
	Car
	Transit
)

// AllModes permits every traversal mode.
const AllModes = Walk | Bicycle | Car | Transit

var modeNames = []struct {
	mode Mode
	name string
}{
	{Walk, "walk"},
	{Bicycle, "bicycle"},
	{Car, "car"},
	{Transit, "transit"},
}

// Allows reports whether m and allowed share at least one mode.
func (m Mode) Allows(allowed Mode) bool { return m&allowed != 0 }

// String renders the mask as a comma-separated list ("walk,transit").
func (m Mode) String() string {
	if m&AllModes == 0 {
		return "none"
	}
	parts := make([]string, 0, len(modeNames))
	for _, mn := range modeNames {
		if m&mn.mode != 0 {
			parts = append(parts, mn.name)
		}
	}

	return strings.Join(parts, ",")
}

// ParseMode parses a single mode name (case-insensitive). "all" yields AllModes,
// "bike" is accepted as an alias of "bicycle".
func ParseMode(name string) (Mode, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "all":
		return AllModes, nil
	case "bike":
		return Bicycle, nil
	}
	for _, mn := range modeNames {
		if mn.name == s {
			return mn.mode, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// ParseModes folds a list of mode names into one mask. An empty list yields
// AllModes.
func ParseModes(names []string) (Mode, error) {
	if len(names) == 0 {
		return AllModes, nil
	}
	var m Mode
	for _, name := range names {
		one, err := ParseMode(name)
		if err != nil {
			return 0, err
		}
		m |= one
	}

	return m, nil
}

// Default speeds in metres per second.
const (
	DefaultWalkSpeed    = 1.33
	DefaultBikeSpeed    = 5.0
	DefaultCarSpeed     = 40.0
	DefaultTransitSpeed = 33.0
)

// TraverseOptions carries the per-request parameters a heuristic needs.
//
// ArriveBy selects the search direction and therefore the lower-bound graph
// orientation. Modes restricts which edges may be traversed; the zero value
// means every mode. Speeds are in m/s and feed the Euclidean estimate.
type TraverseOptions struct {
	ArriveBy     bool
	Modes        Mode
	WalkSpeed    float64
	BikeSpeed    float64
	CarSpeed     float64
	TransitSpeed float64
}

// DefaultTraverseOptions returns depart-at options permitting every mode at
// the default speeds.
func DefaultTraverseOptions() TraverseOptions {
	return TraverseOptions{
		Modes:        AllModes,
		WalkSpeed:    DefaultWalkSpeed,
		BikeSpeed:    DefaultBikeSpeed,
		CarSpeed:     DefaultCarSpeed,
		TransitSpeed: DefaultTransitSpeed,
	}
}

// AllowedModes returns Modes, or AllModes when Modes is empty.
func (o TraverseOptions) AllowedModes() Mode {
	if o.Modes&AllModes == 0 {
		return AllModes
	}

	return o.Modes & AllModes
}

// MaxSpeed returns the fastest speed among the allowed modes, or 0 when no
// allowed mode has a positive speed.
func (o TraverseOptions) MaxSpeed() float64 {
	allowed := o.AllowedModes()
	speeds := []struct {
		mode  Mode
		speed float64
	}{
		{Walk, o.WalkSpeed},
		{Bicycle, o.BikeSpeed},
		{Car, o.CarSpeed},
		{Transit, o.TransitSpeed},
	}
	best := 0.0
	for _, s := range speeds {
		if allowed&s.mode != 0 && !math.IsNaN(s.speed) && s.speed > best {
			best = s.speed
		}
	}

	return best
}

// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of each street edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight to maintain a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// TravelTimeWeightFn returns a WeightFn for a block of the given length in
// meters covered at speed m/s, stretched by a random factor in [1, 1+jitter)
// when an RNG is present. The stretch is never below 1, so the weight never
// beats the straight-line time.
func TravelTimeWeightFn(meters, speed, jitter float64) WeightFn {
	if meters < 0 || speed <= 0 || jitter < 0 {
		panic(fmt.Sprintf("TravelTimeWeightFn: require meters ≥ 0, speed > 0, jitter ≥ 0, got %g, %g, %g", meters, speed, jitter))
	}
	base := meters / speed
	return func(rng *rand.Rand) float64 {
		if rng == nil || jitter == 0 {
			return base
		}
		return base * (1 + rng.Float64()*jitter)
	}
}

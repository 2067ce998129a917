// SPDX-License-Identifier: MIT

package heuristic

import (
	"math"

	"github.com/katalvlaran/lowerbound/core"
)

// earthRadius is the mean Earth radius in meters.
const earthRadius = 6371008.8

// Euclidean estimates the remaining weight as the great-circle distance to
// the target divided by the fastest speed the search allows.
type Euclidean struct{}

// NewEuclidean returns a Euclidean heuristic.
func NewEuclidean() *Euclidean { return &Euclidean{} }

// ComputeInitialWeight returns the estimate for s.
func (e *Euclidean) ComputeInitialWeight(s State, target *core.Vertex) float64 {
	return e.estimate(s, target)
}

// ComputeForwardWeight returns the estimate for s.
func (e *Euclidean) ComputeForwardWeight(s State, target *core.Vertex) float64 {
	return e.estimate(s, target)
}

// ComputeReverseWeight returns the estimate for s.
func (e *Euclidean) ComputeReverseWeight(s State, target *core.Vertex) float64 {
	return e.estimate(s, target)
}

// Reset is a no-op.
func (e *Euclidean) Reset() {}

func (e *Euclidean) estimate(s State, target *core.Vertex) float64 {
	v := s.Vertex()
	if v == nil || target == nil || !v.HasCoord || !target.HasCoord {
		return 0
	}
	speed := s.Options().MaxSpeed()
	if speed <= 0 || math.IsInf(speed, 1) || math.IsNaN(speed) {
		return 0
	}

	return Haversine(v.Lat, v.Lon, target.Lat, target.Lon) / speed
}

// Haversine returns the great-circle distance in meters between two points
// given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const rad = math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadius * math.Asin(math.Min(1, math.Sqrt(a)))
}

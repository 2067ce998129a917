// SPDX-License-Identifier: MIT

package heuristic

import "github.com/katalvlaran/lowerbound/core"

// Zero is the uninformed heuristic.
type Zero struct{}

// ComputeInitialWeight returns 0.
func (Zero) ComputeInitialWeight(State, *core.Vertex) float64 { return 0 }

// ComputeForwardWeight returns 0.
func (Zero) ComputeForwardWeight(State, *core.Vertex) float64 { return 0 }

// ComputeReverseWeight returns 0.
func (Zero) ComputeReverseWeight(State, *core.Vertex) float64 { return 0 }

// Reset is a no-op.
func (Zero) Reset() {}

// SPDX-License-Identifier: MIT

// Package astar is a small, time-independent A* over core.Graph that drives
// a heuristic.RemainingWeightHeuristic.
//
// It is a reference consumer of the heuristic contract: it calls
// ComputeInitialWeight once, then ComputeForwardWeight (depart-at) or
// ComputeReverseWeight (arrive-by) for every state it pushes.
//
// Direction:
//
//   - Depart-at searches from the origin along outgoing edges.
//   - Arrive-by searches from the destination along incoming edges. Pass the
//     destination as from and the origin as to; the path is returned in
//     search order (destination first).
//
// Either endpoint may be a temporary location; its links stand in for edges.
//
// The open set has no closed list: a vertex reached again with a lower cost
// is expanded again, so the result stays optimal under an admissible but
// inconsistent heuristic.
package astar

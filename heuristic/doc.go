// SPDX-License-Identifier: MIT

// Package heuristic provides remaining-weight estimates for A*-style searches.
//
// Every heuristic implements the same four operations:
//
//	ComputeInitialWeight(s, target)  called once when a search starts
//	ComputeForwardWeight(s, target)  estimate for a state in a forward search
//	ComputeReverseWeight(s, target)  estimate for a state in a reverse search
//	Reset()                          called between uses
//
// Variants:
//
//   - LowerBound: looks up a per-group table produced by sweeping a cached
//     lowerbound.Graph from the target. Admissible; O(1) per lookup.
//   - Euclidean: great-circle distance to the target divided by the fastest
//     allowed speed. Admissible when no edge is faster than that speed.
//   - Zero: always 0. The search degenerates to Dijkstra.
//
// Lookups never fail and never return NaN or +Inf. A state whose group is
// unknown or unreachable gets 0: the search stays complete but loses pruning
// for that state.
//
// A heuristic value belongs to one search at a time and is not safe for
// concurrent use. The lowerbound.Graph behind a LowerBound is shared.
package heuristic

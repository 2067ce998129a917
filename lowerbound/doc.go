// SPDX-License-Identifier: MIT

// Package lowerbound reduces a routing graph to a small, direction-aware
// lower-bound graph and runs single-target sweeps over it.
//
// Overview:
//
//   - Every vertex group of a core.Graph becomes one node. Edges inside a group
//     are dropped (moving within a group is bounded below by 0).
//   - Between two groups only the cheapest edge per mode mask survives, so any
//     path in the full graph maps to a path here that is no more expensive.
//   - The result is immutable and safe to share between any number of searches.
//
// Orientation:
//
//   - DepartAt keeps the full-graph direction. A sweep from the target yields,
//     for every group, a lower bound on the cost of reaching the target.
//   - ArriveBy flips every edge. A sweep from the target yields a lower bound
//     on the cost of reaching each group from the target.
//
// A sweep may start at a temporary location: its links seed the groups it is
// attached to (inbound links for DepartAt, outbound links for ArriveBy).
//
// Complexity:
//
//   - Build: O(V + E + A log A), A = number of reduced arcs.
//   - SSSP:  O((G + A) log G), G = number of groups.
//
// Errors:
//
//   - ErrNilGraph, ErrEmptyGraph, ErrBadDirection: Build preconditions.
//   - ErrNegativeWeight, ErrNaNWeight: a malformed weight in the source graph.
//   - ErrNilTarget, ErrGroupOutOfRange: SSSP preconditions.
package lowerbound

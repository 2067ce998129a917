// SPDX-License-Identifier: MIT

// Package lowerbound is the root of a remaining-weight heuristic toolkit for
// multi-modal trip planners: a precomputed lower-bound graph over vertex
// groups, shared across searches, and a per-search Dijkstra sweep that turns
// it into an admissible O(1) estimate for an A*-style search.
//
// Layout:
//
//	core/         routing graph: vertices with groups and coordinates, moded edges, temporary locations
//	dijkstra/     dense multi-seed Dijkstra over index-addressed adjacency
//	lowerbound/   Build (graph → lower-bound graph per direction) and SSSP
//	lbcache/      get-or-build cache, one build per (graph, direction)
//	heuristic/    LowerBound, Euclidean and Zero heuristics behind one contract
//	astar/        reference A* consumer of the heuristic contract
//	metrics/      Noop, atomic and Prometheus collectors
//	loader/       JSON nodes/links documents → core.Graph
//	config/       YAML configuration
//	builder/      deterministic grid, path and random fixtures
//	cmd/lbtable/  CLI: table, route, warm
//
// Quick picture, two colocated vertices (corner A and stop S share group 0):
//
//	group 0 {A, S} ──5── group 1 {B} ──3── group 2 {C}
//
// Sweeping from C over the depart-at lower-bound graph gives the table
// [8 3 0]; every vertex of group 0 sees the bound 8.
//
//	go get github.com/katalvlaran/lowerbound
package lowerbound

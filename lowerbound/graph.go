// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Immutable CSR lower-bound graph.

package lowerbound

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/lowerbound/dijkstra"
)

// Graph is an immutable lower-bound graph over vertex groups.
//
// Arcs are stored per head group: Arcs(h) lists the arcs relaxed when a
// sweep settles h, each pointing at the group whose bound it improves.
// Graph implements dijkstra.Adjacency.
type Graph struct {
	dir     Direction
	source  uuid.UUID
	offsets []int          // len == groups+1; arcs of h are arcs[offsets[h]:offsets[h+1]]
	arcs    []dijkstra.Arc // sorted by (head, To, Modes)
}

// Direction returns the orientation the graph was built for.
func (lg *Graph) Direction() Direction { return lg.dir }

// Source returns the ID of the core.Graph the graph was reduced from.
func (lg *Graph) Source() uuid.UUID { return lg.source }

// GroupCount returns the number of nodes (groups).
func (lg *Graph) GroupCount() int { return len(lg.offsets) - 1 }

// ArcCount returns the number of reduced arcs.
func (lg *Graph) ArcCount() int { return len(lg.arcs) }

// Order implements dijkstra.Adjacency.
func (lg *Graph) Order() int { return lg.GroupCount() }

// Arcs implements dijkstra.Adjacency. The returned slice is shared and
// capacity-limited; callers must not modify it.
func (lg *Graph) Arcs(head int) []dijkstra.Arc {
	lo, hi := lg.offsets[head], lg.offsets[head+1]

	return lg.arcs[lo:hi:hi]
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only identity and statistics getters.

package core

import "github.com/google/uuid"

// ID returns the random identity assigned at construction. Two graphs never
// share an ID, so a reloaded graph is a different key everywhere it is used.
func (g *Graph) ID() uuid.UUID { return g.id }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	Vertices int
	Edges    int
	Groups   int
}

// Stats returns vertex, edge and group counts under one consistent snapshot.
// Complexity: O(1).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return GraphStats{
		Vertices: len(g.vertices),
		Edges:    len(g.edges),
		Groups:   g.nextGroup,
	}
}

// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and adjacency queries.
//
// Determinism:
//   - Edges(), Outgoing() and Incoming() return edges in insertion order.
//
// Concurrency:
//   - AddEdge takes muVert (endpoint bootstrap) then muEdgeAdj.
//   - Queries hold muEdgeAdj read lock (plus muVert for existence checks).

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge creates a directed edge from→to with the given weight and returns
// its unique Edge.ID. Missing endpoints are added with fresh groups.
//
// Behavior highlights:
//   - Weight must be ≥ 0 and not NaN; +Inf is accepted and marks the edge impassable.
//   - Edges default to AllModes unless WithModes is supplied.
//   - Parallel edges are allowed; the reducer keeps the cheapest.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || weight < 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	e := &Edge{From: from, To: to, Weight: weight, Modes: AllModes}
	for _, opt := range opts {
		opt(e)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e.seq = atomic.AddUint64(&g.nextEdgeID, 1)
	e.ID = edgeIDPrefix + strconv.FormatUint(e.seq, 10)
	g.edges[e.ID] = e
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)

	return e.ID, nil
}

// GetEdge returns the edge with the given ID.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns every edge in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Outgoing returns the edges leaving id, in insertion order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d).
func (g *Graph) Outgoing(id string) ([]*Edge, error) {
	return g.adjacent(id, g.out)
}

// Incoming returns the edges arriving at id, in insertion order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d).
func (g *Graph) Incoming(id string) ([]*Edge, error) {
	return g.adjacent(id, g.in)
}

// adjacent copies one adjacency bucket under a consistent snapshot.
func (g *Graph) adjacent(id string, index map[string][]*Edge) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	bucket := index[id]
	out := make([]*Edge, len(bucket))
	copy(out, bucket)

	return out, nil
}

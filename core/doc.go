// SPDX-License-Identifier: MIT

// Package core provides the in-memory routing graph consumed by the
// remaining-weight heuristics: vertices with a group index and coordinates,
// directed weighted edges with traversal permissions, and temporary
// locations that can be linked into the graph for a single request.
//
// The Graph G = (V,E) is always directed. A street that can be walked both
// ways is two edges. Every registered vertex carries a group index ≥ 0;
// vertices that share a group are treated as one node by the lower-bound
// reducer (a street corner and the transit stop standing on it, for example).
//
// Concurrency:
//
//   - muVert guards the vertex catalog and the group counter.
//   - muEdgeAdj guards the edge catalog and both adjacency indexes.
//   - Lock order is always muVert -> muEdgeAdj.
//   - Returned *Vertex and *Edge values are shared; treat them as read-only.
//
// Core methods:
//
//	AddVertex(id string, opts ...VertexOption) error                   // O(1)
//	AddEdge(from, to string, w float64, opts ...EdgeOption) (string, error) // O(1) amortized
//	Vertex(id string) (*Vertex, error)                                 // O(1)
//	Outgoing(id string) ([]*Edge, error) / Incoming(id string)         // O(d)
//	Vertices() []string                                                // O(V log V), sorted
//	Edges() []*Edge                                                    // O(E log E), insertion order
//	VerticesMap() map[string]*Vertex                                   // O(V) snapshot
//	GroupCount(), VertexCount(), EdgeCount(), Stats()                  // O(1)
//
// Temporary locations:
//
//	loc := core.NewLocation("origin", 45.50, -73.56)
//	_ = g.LinkTo(loc, "corner-12", 35)   // loc → corner-12
//	_ = g.LinkFrom(loc, "corner-12", 35) // corner-12 → loc
//
// A location is never registered in the graph and has Group == NoGroup.
// Its links are consulted only by the code that injects it as an SSSP
// endpoint or search origin.
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge
//	ErrBadWeight       – negative or NaN edge weight
//	ErrLoopNotAllowed  – self-loop when loops are disabled
//	ErrNotLocation     – linking a vertex that is not a temporary location
//	ErrUnknownMode     – unrecognized mode name
package core

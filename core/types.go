// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Link and Graph declarations, options, sentinel errors
// and the NewGraph constructor.

package core

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNotLocation indicates a link was requested for a registered vertex.
	ErrNotLocation = errors.New("core: vertex is not a temporary location")

	// ErrUnknownMode indicates an unrecognized traversal mode name.
	ErrUnknownMode = errors.New("core: unknown traversal mode")
)

// NoGroup is the group index of temporary locations.
const NoGroup = -1

// Vertex represents a node of the routing graph.
//
// Group buckets equivalent or colocated vertices; the lower-bound reducer
// collapses every group into one node. Lat/Lon are WGS84 degrees and are
// meaningful only when HasCoord is true.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Group is the heuristic group index (≥ 0), or NoGroup for locations.
	Group int

	// Lat and Lon locate the vertex.
	Lat, Lon float64

	// HasCoord reports whether Lat/Lon were provided.
	HasCoord bool

	// links holds the temporary edges of a location.
	links []Link
}

// Temporary reports whether v is a temporary location rather than a
// registered graph vertex.
func (v *Vertex) Temporary() bool { return v != nil && v.Group == NoGroup }

// Links returns a copy of the temporary edges attached to a location.
// Registered vertices have no links.
func (v *Vertex) Links() []Link {
	if v == nil || len(v.links) == 0 {
		return nil
	}
	out := make([]Link, len(v.links))
	copy(out, v.links)

	return out
}

// Edge is a directed connection From→To.
//
// Weight is the time-independent minimum cost of traversing the edge
// (seconds in the bundled loaders). +Inf marks an impassable edge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the lower-bound traversal cost.
	Weight float64

	// Modes lists the traversal modes permitted on this edge.
	Modes Mode

	// Name is an optional street or route label.
	Name string

	seq uint64 // insertion sequence, used for stable ordering
}

// Link is a temporary edge between a location and a registered vertex.
//
// Outbound links leave the location (location → Peer); inbound links
// arrive at it (Peer → location).
type Link struct {
	Peer     *Vertex
	Weight   float64
	Modes    Mode
	Outbound bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures a vertex when it is added.
type VertexOption func(*Vertex)

// WithGroup places the vertex into group idx. Panics if idx < 0.
//
// Without this option a vertex gets a fresh group of its own.
func WithGroup(idx int) VertexOption {
	if idx < 0 {
		panic("core: WithGroup requires a non-negative index")
	}
	return func(v *Vertex) { v.Group = idx }
}

// WithCoord attaches WGS84 coordinates to the vertex.
func WithCoord(lat, lon float64) VertexOption {
	return func(v *Vertex) {
		v.Lat, v.Lon = lat, lon
		v.HasCoord = true
	}
}

// EdgeOption configures properties of individual edges and links when added.
type EdgeOption func(*Edge)

// WithModes restricts the edge to the given traversal modes. Panics on an
// empty mode set, which would make the edge unusable.
func WithModes(m Mode) EdgeOption {
	if m&AllModes == 0 {
		panic("core: WithModes requires at least one mode")
	}
	return func(e *Edge) { e.Modes = m & AllModes }
}

// WithName labels the edge.
func WithName(name string) EdgeOption {
	return func(e *Edge) { e.Name = name }
}

// Graph is the in-memory routing graph.
//
// muVert protects vertices and nextGroup; muEdgeAdj protects edges, out and in.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, nextGroup
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	id         uuid.UUID // instance identity for logs and in-flight keys
	allowLoops bool

	nextEdgeID uint64             // atomic edge ID generator
	nextGroup  int                // one past the highest group index in use
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	out map[string][]*Edge // from → outgoing edges, insertion order
	in  map[string][]*Edge // to → incoming edges, insertion order
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		id:       uuid.New(),
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]*Edge),
		in:       make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

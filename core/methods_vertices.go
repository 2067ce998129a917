// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, lookup and group bookkeeping.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Fresh groups are handed out in AddVertex call order.
//
// Concurrency:
//   - Vertex catalog and group counter protected by muVert.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert, check presence; an existing vertex is left untouched.
//   - Stage 3: Apply options. Without WithGroup the vertex gets the next fresh
//     group index; with it, the group counter is raised to cover idx.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.addVertexLocked(id, opts...)

	return nil
}

// addVertexLocked registers id under an already held muVert write lock.
func (g *Graph) addVertexLocked(id string, opts ...VertexOption) {
	if _, exists := g.vertices[id]; exists {
		return
	}

	v := &Vertex{ID: id, Group: NoGroup}
	for _, opt := range opts {
		opt(v)
	}
	if v.Group == NoGroup {
		v.Group = g.nextGroup
	}
	if v.Group >= g.nextGroup {
		g.nextGroup = v.Group + 1
	}
	g.vertices[id] = v
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the registered vertex with the given ID.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	sort.Strings(ids)

	return ids
}

// VerticesMap returns a snapshot of the vertex catalog. The map is a copy;
// the *Vertex values are shared.
// Complexity: O(V).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[string]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// GroupCount returns one past the highest group index in use. Group indexes
// are dense from the graph's point of view: a heuristic table for this graph
// has exactly GroupCount entries, some of which may belong to no vertex.
// Complexity: O(1).
func (g *Graph) GroupCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.nextGroup
}

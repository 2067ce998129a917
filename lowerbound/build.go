// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Graph reducer (core.Graph → lower-bound Graph).

package lowerbound

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lowerbound/core"
	"github.com/katalvlaran/lowerbound/dijkstra"
)

// arcKey identifies one reduced arc before CSR packing.
type arcKey struct {
	head, to int
	modes    core.Mode
}

// Build reduces g into a lower-bound graph for dir.
//
// Steps:
//  1. Validate g and dir.
//  2. For every edge with a finite weight between two different groups,
//     orient it for dir and keep the minimum weight per (head, to, modes).
//  3. Sort the survivors and pack them into CSR form.
//
// A group with no vertex (a gap in explicit group indexes) becomes an
// isolated node. Edges with weight +Inf or an empty mode mask never
// produce arcs.
//
// Complexity: O(V + E + A log A) time, O(G + A) space.
func Build(g *core.Graph, dir Direction, opts ...BuildOption) (*Graph, error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadDirection, uint8(dir))
	}
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.VerticesMap()
	if len(vertices) == 0 {
		return nil, ErrEmptyGraph
	}
	groups := g.GroupCount()
	for _, v := range vertices {
		if v.Group >= groups {
			groups = v.Group + 1
		}
	}

	// 2) Reduce: one minimum per key; with collapsed modes the key drops the
	// mask and union accumulates it.
	best := make(map[arcKey]float64)
	var union map[arcKey]core.Mode
	if cfg.collapseModes {
		union = make(map[arcKey]core.Mode)
	}
	for _, e := range g.Edges() {
		switch {
		case math.IsNaN(e.Weight):
			return nil, fmt.Errorf("%w: edge %s (%s→%s)", ErrNaNWeight, e.ID, e.From, e.To)
		case e.Weight < 0:
			return nil, fmt.Errorf("%w: edge %s (%s→%s) weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		case math.IsInf(e.Weight, 1), e.Modes&core.AllModes == 0:
			continue
		}

		from, okFrom := vertices[e.From]
		to, okTo := vertices[e.To]
		if !okFrom || !okTo || from.Group == to.Group {
			continue
		}

		k := orient(dir, from.Group, to.Group)
		if union != nil {
			union[k] |= e.Modes & core.AllModes
		} else {
			k.modes = e.Modes & core.AllModes
		}
		if w, ok := best[k]; !ok || e.Weight < w {
			best[k] = e.Weight
		}
	}

	// 3) Pack.
	return pack(g, dir, groups, best, union), nil
}

// orient maps a full-graph edge from → to onto a (head, to) pair. A sweep
// settling head relaxes the arc toward to.
func orient(dir Direction, from, to int) arcKey {
	if dir == ArriveBy {
		return arcKey{head: from, to: to}
	}

	return arcKey{head: to, to: from}
}

// pack sorts the reduced arcs and lays them out in CSR form. A non-nil
// union supplies the mode mask of each (mask-free) key.
func pack(g *core.Graph, dir Direction, groups int, best map[arcKey]float64, union map[arcKey]core.Mode) *Graph {
	keys := make([]arcKey, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.head != b.head {
			return a.head < b.head
		}
		if a.to != b.to {
			return a.to < b.to
		}

		return a.modes < b.modes
	})

	lg := &Graph{
		dir:     dir,
		source:  g.ID(),
		offsets: make([]int, groups+1),
		arcs:    make([]dijkstra.Arc, len(keys)),
	}
	for i, k := range keys {
		modes := k.modes
		if union != nil {
			modes = union[k]
		}
		lg.arcs[i] = dijkstra.Arc{To: k.to, Weight: best[k], Modes: modes}
		lg.offsets[k.head+1]++
	}
	for h := 1; h <= groups; h++ {
		lg.offsets[h] += lg.offsets[h-1]
	}

	return lg
}

// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/lowerbound/core"
	"github.com/katalvlaran/lowerbound/heuristic"
)

// Sentinel errors.
var (
	ErrNilGraph     = errors.New("astar: graph is nil")
	ErrNilEndpoint  = errors.New("astar: endpoint is nil")
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
	ErrNoPath       = errors.New("astar: no path found")
)

// Result contains the outcome of a search.
type Result struct {
	Path          []string // vertex IDs in search order
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// step is a traversable move to a vertex (or location) at a cost.
type step struct {
	to   *core.Vertex
	cost float64
}

// Search runs A* from from to to over g, using h for remaining-weight
// estimates and opts for direction and mode permissions. It returns
// ErrNoPath when the open set is exhausted and ctx.Err() when ctx ends
// first.
func Search(
	ctx context.Context,
	g *core.Graph,
	from, to *core.Vertex,
	h heuristic.RemainingWeightHeuristic,
	opts core.TraverseOptions,
) (Result, error) {
	switch {
	case g == nil:
		return Result{}, ErrNilGraph
	case from == nil || to == nil:
		return Result{}, ErrNilEndpoint
	case h == nil:
		return Result{}, ErrNilHeuristic
	}

	s := &search{g: g, from: from, to: to, h: h, opts: opts, allowed: opts.AllowedModes()}

	return s.run(ctx)
}

type search struct {
	g        *core.Graph
	from, to *core.Vertex
	h        heuristic.RemainingWeightHeuristic
	opts     core.TraverseOptions
	allowed  core.Mode

	open     priorityQueue
	gScore   map[*core.Vertex]float64
	cameFrom map[*core.Vertex]*core.Vertex
	seq      uint64
}

func (s *search) run(ctx context.Context) (Result, error) {
	// --- Initialize state ---
	s.h.ComputeInitialWeight(heuristic.NewState(s.from, s.opts), s.to)
	s.gScore = map[*core.Vertex]float64{s.from: 0}
	s.cameFrom = make(map[*core.Vertex]*core.Vertex)
	heap.Init(&s.open)
	s.push(s.from, 0)

	// --- Main loop ---
	expandedNodes := 0
	for s.open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Result{ExpandedNodes: expandedNodes}, err
		}

		current := heap.Pop(&s.open).(*queueItem)
		// Skip stale entries; a better route to this vertex was pushed later.
		if current.gScore > s.gScore[current.node] {
			continue
		}
		expandedNodes++

		if current.node == s.to {
			return Result{
				Path:          s.reconstructPath(current.node),
				TotalCost:     current.gScore,
				ExpandedNodes: expandedNodes,
				Found:         true,
			}, nil
		}

		for _, st := range s.neighbors(current.node) {
			tentativeG := current.gScore + st.cost
			if known, ok := s.gScore[st.to]; ok && tentativeG >= known {
				continue
			}
			s.gScore[st.to] = tentativeG
			s.cameFrom[st.to] = current.node
			s.push(st.to, tentativeG)
		}
	}

	return Result{ExpandedNodes: expandedNodes}, ErrNoPath
}

func (s *search) push(v *core.Vertex, g float64) {
	state := heuristic.NewState(v, s.opts)
	var est float64
	if s.opts.ArriveBy {
		est = s.h.ComputeReverseWeight(state, s.to)
	} else {
		est = s.h.ComputeForwardWeight(state, s.to)
	}
	s.seq++
	heap.Push(&s.open, &queueItem{node: v, gScore: g, fCost: g + est, seq: s.seq})
}

// neighbors lists the moves out of v in search direction: graph edges,
// the links of a location endpoint, and the final link into a location target.
func (s *search) neighbors(v *core.Vertex) []step {
	backward := s.opts.ArriveBy
	var out []step

	if v.Temporary() {
		// Leaving a location start: forward uses outbound links, backward inbound.
		for _, l := range v.Links() {
			if l.Outbound != backward && s.usable(l.Modes, l.Weight) {
				out = append(out, step{to: l.Peer, cost: l.Weight})
			}
		}
		return out
	}

	var edges []*core.Edge
	if backward {
		edges, _ = s.g.Incoming(v.ID)
	} else {
		edges, _ = s.g.Outgoing(v.ID)
	}
	for _, e := range edges {
		if !s.usable(e.Modes, e.Weight) {
			continue
		}
		id := e.To
		if backward {
			id = e.From
		}
		next, err := s.g.Vertex(id)
		if err != nil {
			continue
		}
		out = append(out, step{to: next, cost: e.Weight})
	}

	// Entering a location target: forward via its inbound links, backward via outbound.
	if s.to.Temporary() {
		for _, l := range s.to.Links() {
			if l.Peer == v && l.Outbound == backward && s.usable(l.Modes, l.Weight) {
				out = append(out, step{to: s.to, cost: l.Weight})
			}
		}
	}

	return out
}

func (s *search) usable(m core.Mode, w float64) bool {
	return m.Allows(s.allowed) && !math.IsInf(w, 1)
}

func (s *search) reconstructPath(current *core.Vertex) []string {
	path := []string{current.ID}
	for current != s.from {
		previous, exists := s.cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previous.ID)
		current = previous
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

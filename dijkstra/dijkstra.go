// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on dense,
// index-addressed graphs.
//
// Notes on implementation choices:
//
//   - Seeds are validated up front; arc weights are validated as they are relaxed,
//     because a full pre-scan would cost O(E) on every query of a shared graph.
//   - We treat any arc with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by node index, so settle order and prev are deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Run computes shortest distances from the configured seeds to every node of adj.
//
// Returns:
//
//   - dist: dist[v] = minimum distance from any seed to v, +Inf if unreachable.
//   - prev: optional predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == NoPredecessor for seeds and unreachable nodes.
//   - err:  error if inputs are invalid or if a negative weight is met.
//
// Without seeds every distance is +Inf; that is a valid result, not an error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Run(adj Adjacency, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if adj == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate seeds before any allocation that depends on them.
	n := adj.Order()
	for _, s := range cfg.Seeds {
		if s.Node < 0 || s.Node >= n {
			return nil, nil, fmt.Errorf("%w: node=%d order=%d", ErrSeedOutOfRange, s.Node, n)
		}
		if math.IsNaN(s.Cost) || s.Cost < 0 {
			return nil, nil, fmt.Errorf("%w: seed node=%d cost=%g", ErrNegativeWeight, s.Node, s.Cost)
		}
	}

	// 4) Prepare state.
	r := &runner{
		adj:     adj,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, len(cfg.Seeds)),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	// 5) Initialize and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     Adjacency // read-only within Run
	options Options
	dist    []float64 // node → current best distance
	prev    []int     // node → predecessor (nil unless ReturnPath)
	visited []bool    // node → distance finalized
	pq      nodePQ    // lazy min-heap
}

// init sets dist to +Inf everywhere, then pushes every seed within MaxDistance.
func (r *runner) init() {
	inf := math.Inf(1)
	for i := range r.dist {
		r.dist[i] = inf
	}
	for i := range r.prev {
		r.prev[i] = NoPredecessor
	}

	heap.Init(&r.pq)
	for _, s := range r.options.Seeds {
		if s.Cost > r.options.MaxDistance || s.Cost >= r.dist[s.Node] {
			continue
		}
		r.dist[s.Node] = s.Cost
		heap.Push(&r.pq, &nodeItem{id: s.Node, dist: s.Cost})
	}
}

// process repeatedly extracts the closest unsettled node and relaxes its arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every arc of u and improves distances to its heads.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	for _, a := range r.adj.Arcs(u) {
		if !a.Modes.Allows(r.options.Modes) {
			continue
		}
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if math.IsNaN(a.Weight) || a.Weight < 0 {
			return fmt.Errorf("%w: arc %d→%d weight=%g", ErrNegativeWeight, u, a.To, a.Weight)
		}

		v := a.To
		newDist := r.dist[u] + a.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only, so equal-cost alternatives keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node index for deterministic ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// SPDX-License-Identifier: MIT
//
// File: sssp.go
// Role: Single-target sweep over a lower-bound graph.

package lowerbound

import (
	"fmt"

	"github.com/katalvlaran/lowerbound/core"
	"github.com/katalvlaran/lowerbound/dijkstra"
)

// SSSP returns one lower bound per group for reaching target (DepartAt) or
// for being reached from target (ArriveBy). Unreachable groups hold +Inf.
//
// Seeding:
//   - A registered target seeds its own group at 0.
//   - Each link of target seeds the peer's group at the link weight. DepartAt
//     uses inbound links (peer → target), ArriveBy outbound links.
//
// Arcs and links whose modes do not intersect opts.AllowedModes() are skipped.
// The returned slice is freshly allocated and owned by the caller.
//
// Complexity: O((G + A) log G).
func (lg *Graph) SSSP(target *core.Vertex, opts core.TraverseOptions) ([]float64, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	allowed := opts.AllowedModes()
	groups := lg.GroupCount()

	seeds, err := lg.seeds(target, allowed, groups)
	if err != nil {
		return nil, err
	}

	dist, _, err := dijkstra.Run(lg, dijkstra.WithSeeds(seeds...), dijkstra.WithModes(allowed))
	if err != nil {
		return nil, fmt.Errorf("lowerbound: sweep from %q: %w", target.ID, err)
	}

	return dist, nil
}

// seeds collects the starting groups of a sweep from target.
func (lg *Graph) seeds(target *core.Vertex, allowed core.Mode, groups int) ([]dijkstra.Seed, error) {
	var seeds []dijkstra.Seed
	if !target.Temporary() {
		if target.Group < 0 || target.Group >= groups {
			return nil, fmt.Errorf("%w: target %q group=%d groups=%d", ErrGroupOutOfRange, target.ID, target.Group, groups)
		}
		seeds = append(seeds, dijkstra.Seed{Node: target.Group, Cost: 0})
	}

	wantOutbound := lg.dir == ArriveBy
	for _, l := range target.Links() {
		if l.Outbound != wantOutbound || !l.Modes.Allows(allowed) || l.Peer == nil {
			continue
		}
		if l.Peer.Group < 0 || l.Peer.Group >= groups {
			return nil, fmt.Errorf("%w: link %q→%q group=%d groups=%d", ErrGroupOutOfRange, target.ID, l.Peer.ID, l.Peer.Group, groups)
		}
		seeds = append(seeds, dijkstra.Seed{Node: l.Peer.Group, Cost: l.Weight})
	}

	return seeds, nil
}

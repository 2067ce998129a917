// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lowerbound/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds a two-way street of n corners idFn(0)…idFn(n-1) laid out
// eastward from the origin. Edges are emitted i→i+1 then i+1→i, i ascending.
//
// Complexity: O(n) vertices, 2(n-1) edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id, cfg.coordAt(0, i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := addStreet(g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}

// addStreet adds u→v and v→u with independently drawn weights.
func addStreet(g *core.Graph, cfg builderConfig, u, v string) error {
	for _, pair := range [2][2]string{{u, v}, {v, u}} {
		w := cfg.weight()
		if _, err := g.AddEdge(pair[0], pair[1], w, core.WithModes(cfg.modes)); err != nil {
			return fmt.Errorf("AddEdge(%s→%s, w=%g): %w", pair[0], pair[1], w, err)
		}
	}

	return nil
}

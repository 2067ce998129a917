// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lowerbound/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds a one-way network of n vertices where each ordered
// pair (i, j), i ≠ j, gets an edge with probability p. Vertices are scattered
// over a square of side spacing·√n from the origin. Requires an RNG unless
// p is 0 or 1.
//
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		side := math.Sqrt(float64(n))
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			row, col := 0, i
			if rng != nil {
				row, col = int(rng.Float64()*side), int(rng.Float64()*side)
			}
			if err := g.AddVertex(id, cfg.coordAt(row, col)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p < probMax && (rng == nil || rng.Float64() >= p) {
					continue
				}
				v := cfg.idFn(j)
				w := cfg.weight()
				if _, err := g.AddEdge(u, v, w, core.WithModes(cfg.modes)); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}

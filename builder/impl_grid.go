// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lowerbound/core"
)

const (
	methodGrid  = "Grid"
	methodStops = "Stops"
	minGridDim  = 1
	minStopStep = 1
)

// Grid builds a rows×cols 4-neighborhood street grid with IDs GridID(r,c).
// Every corner is its own group. Streets are two-way; emission order is
// row-major, east neighbor before south neighbor.
//
// Complexity: O(rows*cols) vertices and edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id, cfg.coordAt(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addStreet(g, cfg, GridID(r, c), GridID(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := addStreet(g, cfg, GridID(r, c), GridID(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}

// Stops adds a transit line along an existing grid row: a stop StopID(row,c)
// at every every-th corner, in the corner's group and at its coordinate.
// Each stop gets zero-weight walk edges to and from its corner, and
// consecutive stops are joined both ways by transit edges of stopHop per
// block covered.
//
// Complexity: O(cols) vertices and edges.
func Stops(row, every int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if every < minStopStep {
			return fmt.Errorf("%s: every=%d < min=%d: %w", methodStops, every, minStopStep, ErrTooFewVertices)
		}
		if !g.HasVertex(GridID(row, 0)) {
			return fmt.Errorf("%s: no grid row %d: %w", methodStops, row, ErrConstructFailed)
		}

		prev := -1
		for c := 0; g.HasVertex(GridID(row, c)); c += every {
			corner, err := g.Vertex(GridID(row, c))
			if err != nil {
				return fmt.Errorf("%s: %w", methodStops, err)
			}
			stop := StopID(row, c)
			if err = g.AddVertex(stop, core.WithGroup(corner.Group), core.WithCoord(corner.Lat, corner.Lon)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStops, stop, err)
			}
			if err = addLink(g, corner.ID, stop, 0, core.Walk); err != nil {
				return fmt.Errorf("%s: %w", methodStops, err)
			}
			if prev >= 0 {
				hop := cfg.stopHop * float64(c-prev)
				if err = addLink(g, StopID(row, prev), stop, hop, core.Transit); err != nil {
					return fmt.Errorf("%s: %w", methodStops, err)
				}
			}
			prev = c
		}

		return nil
	}
}

// addLink adds u→v and v→u with the same weight and modes.
func addLink(g *core.Graph, u, v string, w float64, modes core.Mode) error {
	for _, pair := range [2][2]string{{u, v}, {v, u}} {
		if _, err := g.AddEdge(pair[0], pair[1], w, core.WithModes(modes)); err != nil {
			return fmt.Errorf("AddEdge(%s→%s, w=%g): %w", pair[0], pair[1], w, err)
		}
	}

	return nil
}

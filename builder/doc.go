// SPDX-License-Identifier: MIT

// Package builder produces deterministic routing-graph fixtures for tests,
// benchmarks and demos.
//
// Entry point:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.Grid(4, 4),
//		builder.Stops(0, 2),
//	)
//
// Constructors:
//
//   - Path(n):            a two-way street of n corners.
//   - Grid(rows, cols):   a two-way street grid with IDs "r,c".
//   - Stops(row, every):  transit stops colocated with grid corners (same
//     group), linked to the corner and to each other along the row.
//   - RandomSparse(n, p): a random one-way network; requires an RNG.
//
// Every registered vertex has coordinates laid out from the configured origin
// with the configured spacing, so geometric heuristics can run on fixtures.
//
// Determinism: same options, same seed and same constructor order produce
// the same graph, including edge IDs.
package builder

// SPDX-License-Identifier: MIT

// Package dijkstra provides a dense, index-addressed implementation of
// Dijkstra's shortest-path algorithm for graphs with non-negative arc weights.
//
// Overview:
//
//   - Nodes are the integers 0..Order()-1 of an Adjacency; distances come back
//     as a []float64 of the same length, +Inf for unreachable nodes.
//   - Any number of seeds may be given, each with its own starting cost. This is
//     what lets an SSSP originate at a point that is not itself a node: seed
//     every node the point is linked to with the cost of the link.
//   - It relies on a min-heap ordered by (distance, node index), so equal
//     distances are always settled in the same order.
//
// When to use:
//
//   - Sweeping a precomputed lower-bound graph from a search target, to give an
//     A* search an admissible per-node estimate.
//   - Any one-to-all or many-to-all query on a static graph small enough to be
//     held as dense slices.
//
// Key features:
//
//   - WithSeed(node, cost): one or more sources (required for a non-trivial result).
//   - WithModes(mask): arcs whose mode mask does not intersect mask are skipped.
//   - WithMaxDistance(d): nodes farther than d stay at +Inf.
//   - WithInfEdgeThreshold(t): arcs with weight ≥ t are treated as impassable.
//   - WithReturnPath(): also return the predecessor of each settled node.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) worst case (lazy decrease-key keeps stale heap entries).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         the Adjacency is nil.
//   - ErrSeedOutOfRange:   a seed names a node outside 0..Order()-1.
//   - ErrNegativeWeight:   a seed cost or an arc weight is negative or NaN.
//   - ErrBadMaxDistance:   (panic) WithMaxDistance with a negative or NaN value.
//   - ErrBadInfThreshold:  (panic) WithInfEdgeThreshold with a non-positive value.
//
// Thread safety:
//
//   - Run allocates all of its state per call; an Adjacency that is not mutated
//     may be shared by any number of concurrent Run calls.
package dijkstra

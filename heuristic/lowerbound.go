// SPDX-License-Identifier: MIT

package heuristic

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lowerbound/core"
	"github.com/katalvlaran/lowerbound/lbcache"
	"github.com/katalvlaran/lowerbound/lowerbound"
	"github.com/katalvlaran/lowerbound/metrics"
)

// LowerBound is a table-driven admissible heuristic.
//
// It starts uninitialized. ComputeInitialWeight with a target sweeps the
// shared lower-bound graph from it and keeps the table; calling it again
// with the same target (pointer identity) keeps the table, a different
// target replaces it.
type LowerBound struct {
	lg      *lowerbound.Graph
	logger  *zap.Logger
	metrics metrics.Collector

	ready   bool
	target  *core.Vertex
	weights []float64
	sweeps  int
}

// Option configures a LowerBound.
type Option func(*LowerBound)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("heuristic: WithLogger requires a non-nil logger")
	}
	return func(h *LowerBound) { h.logger = l }
}

// WithMetrics sets the metrics collector. Panics on nil.
func WithMetrics(m metrics.Collector) Option {
	if m == nil {
		panic("heuristic: WithMetrics requires a non-nil collector")
	}
	return func(h *LowerBound) { h.metrics = m }
}

// NewLowerBound returns a heuristic over the lower-bound graph of g for dir,
// taken from (or built into) c. Build errors are returned unchanged.
func NewLowerBound(c *lbcache.Cache, g *core.Graph, dir lowerbound.Direction, opts ...Option) (*LowerBound, error) {
	if c == nil {
		return nil, ErrNilCache
	}
	lg, err := c.Get(g, dir)
	if err != nil {
		return nil, err
	}

	h := &LowerBound{lg: lg, logger: zap.NewNop(), metrics: metrics.Noop{}}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// ComputeInitialWeight prepares the table for target and returns 0.
func (h *LowerBound) ComputeInitialWeight(s State, target *core.Vertex) float64 {
	if h.ready && target == h.target {
		return 0
	}
	h.recompute(s.Options(), target)

	return 0
}

func (h *LowerBound) recompute(opts core.TraverseOptions, target *core.Vertex) {
	h.ready, h.target = true, target
	h.sweeps++

	start := time.Now()
	weights, err := h.lg.SSSP(target, opts)
	elapsed := time.Since(start)
	if err != nil {
		h.weights = nil
		h.logger.Error("lower bound sweep failed, heuristic disabled for this target",
			zap.Stringer("direction", h.lg.Direction()), zap.Error(err))
		return
	}
	h.weights = weights

	reached := 0
	for _, w := range weights {
		if !math.IsInf(w, 1) {
			reached++
		}
	}
	h.metrics.RecordSSSP(elapsed, reached)
	h.logger.Debug("recomputed lower bound table",
		zap.String("target", target.ID),
		zap.Stringer("direction", h.lg.Direction()),
		zap.Int("reached", reached),
		zap.Int("groups", len(weights)),
		zap.Duration("duration", elapsed))
}

// ComputeForwardWeight returns the table value of s's group, or 0.
func (h *LowerBound) ComputeForwardWeight(s State, _ *core.Vertex) float64 {
	return h.lookup(s)
}

// ComputeReverseWeight returns the table value of s's group, or 0.
func (h *LowerBound) ComputeReverseWeight(s State, _ *core.Vertex) float64 {
	return h.lookup(s)
}

// lookup collapses out-of-range groups and +Inf entries to 0.
func (h *LowerBound) lookup(s State) float64 {
	v := s.Vertex()
	if v == nil || v.Group < 0 || v.Group >= len(h.weights) {
		return 0
	}
	w := h.weights[v.Group]
	if math.IsInf(w, 1) {
		return 0
	}

	return w
}

// Reset is a no-op: the table stays until the target changes.
func (h *LowerBound) Reset() {}

// Target returns the target of the current table (nil before the first call).
func (h *LowerBound) Target() *core.Vertex { return h.target }

// Weights returns a copy of the current table.
func (h *LowerBound) Weights() []float64 {
	out := make([]float64, len(h.weights))
	copy(out, h.weights)

	return out
}

// Recomputations returns how many sweeps the heuristic has run.
func (h *LowerBound) Recomputations() int { return h.sweeps }

// Graph returns the shared lower-bound graph.
func (h *LowerBound) Graph() *lowerbound.Graph { return h.lg }

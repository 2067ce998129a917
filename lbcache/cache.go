// SPDX-License-Identifier: MIT

// Package lbcache shares lower-bound graphs between searches.
//
// A Cache holds at most one lowerbound.Graph per (graph, direction) key and
// builds it on first use. Concurrent first requests for the same key wait
// for a single build instead of racing; a failed build is not installed,
// so the next request retries it.
//
// The cache is an explicit object: create one per process (or per routing
// graph generation) and hand it to every heuristic that needs it.
package lbcache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/lowerbound/core"
	"github.com/katalvlaran/lowerbound/lowerbound"
	"github.com/katalvlaran/lowerbound/metrics"
)

// Key identifies a cache entry: the same graph instance and the same direction.
type Key struct {
	Graph     *core.Graph
	Direction lowerbound.Direction
}

// Cache is a get-or-build store of lower-bound graphs. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]*lowerbound.Graph
	flights singleflight.Group

	logger    *zap.Logger
	metrics   metrics.Collector
	buildOpts []lowerbound.BuildOption
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("lbcache: WithLogger requires a non-nil logger")
	}
	return func(c *Cache) { c.logger = l }
}

// WithMetrics sets the metrics collector. Panics on nil.
func WithMetrics(m metrics.Collector) Option {
	if m == nil {
		panic("lbcache: WithMetrics requires a non-nil collector")
	}
	return func(c *Cache) { c.metrics = m }
}

// WithBuildOptions passes opts to every lowerbound.Build the cache runs.
func WithBuildOptions(opts ...lowerbound.BuildOption) Option {
	return func(c *Cache) { c.buildOpts = append(c.buildOpts, opts...) }
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[Key]*lowerbound.Graph),
		logger:  zap.NewNop(),
		metrics: metrics.Noop{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the lower-bound graph of g for dir, building it on first use.
// Every successful call for the same key returns the same instance.
func (c *Cache) Get(g *core.Graph, dir lowerbound.Direction) (*lowerbound.Graph, error) {
	if g == nil {
		return nil, lowerbound.ErrNilGraph
	}
	key := Key{Graph: g, Direction: dir}

	if lg, ok := c.lookup(key); ok {
		c.metrics.RecordCacheHit(dir.String())
		c.logger.Debug("reusing cached lower bound graph",
			zap.Stringer("graph", g.ID()), zap.Stringer("direction", dir))
		return lg, nil
	}
	c.metrics.RecordCacheMiss(dir.String())
	c.logger.Debug("no lower bound graph found",
		zap.Stringer("graph", g.ID()), zap.Stringer("direction", dir))

	v, err, _ := c.flights.Do(g.ID().String()+"/"+dir.String(), func() (any, error) {
		// Another flight may have installed the entry after our lookup.
		if lg, ok := c.lookup(key); ok {
			return lg, nil
		}

		return c.build(key)
	})
	if err != nil {
		return nil, err
	}

	return v.(*lowerbound.Graph), nil
}

func (c *Cache) lookup(key Key) (*lowerbound.Graph, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lg, ok := c.entries[key]
	return lg, ok
}

func (c *Cache) build(key Key) (*lowerbound.Graph, error) {
	fields := []zap.Field{zap.Stringer("graph", key.Graph.ID()), zap.Stringer("direction", key.Direction)}
	c.logger.Debug("building lower bound graph", fields...)

	start := time.Now()
	lg, err := lowerbound.Build(key.Graph, key.Direction, c.buildOpts...)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.RecordBuild(key.Direction.String(), elapsed, 0, 0, err)
		c.logger.Error("failed to build lower bound graph", append(fields, zap.Error(err))...)
		return nil, err
	}
	c.metrics.RecordBuild(key.Direction.String(), elapsed, lg.GroupCount(), lg.ArcCount(), nil)
	c.logger.Debug("built lower bound graph", append(fields,
		zap.Duration("duration", elapsed),
		zap.Int("groups", lg.GroupCount()),
		zap.Int("arcs", lg.ArcCount()))...)

	c.mu.Lock()
	c.entries[key] = lg
	c.mu.Unlock()

	return lg, nil
}

// Warm builds both directions of g concurrently. It returns the first build
// error, or ctx.Err() if ctx is done before a build starts.
func (c *Cache) Warm(ctx context.Context, g *core.Graph) error {
	eg, egCtx := errgroup.WithContext(ctx)
	for _, dir := range lowerbound.Directions {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			_, err := c.Get(g, dir)
			return err
		})
	}

	return eg.Wait()
}

// Forget drops every entry of g. A build of g already in flight still
// installs its result.
func (c *Cache) Forget(g *core.Graph) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, dir := range lowerbound.Directions {
		delete(c.entries, Key{Graph: g, Direction: dir})
	}
}

// Len returns the number of installed entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

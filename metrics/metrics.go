// SPDX-License-Identifier: MIT

// Package metrics defines the operational metrics emitted by the lower-bound
// cache and heuristics, with no-op, in-memory and Prometheus collectors.
package metrics

import (
	"sync/atomic"
	"time"
)

// Collector receives operational metrics. Implementations must be safe for
// concurrent use; every method is called on a hot or contended path and
// must not block.
type Collector interface {
	// RecordBuild is called after each lower-bound graph build for direction
	// dir. groups and arcs describe the result and are 0 when err != nil.
	RecordBuild(dir string, duration time.Duration, groups, arcs int, err error)

	// RecordCacheHit is called when a lookup returns an installed graph.
	RecordCacheHit(dir string)

	// RecordCacheMiss is called when a lookup finds nothing installed.
	RecordCacheMiss(dir string)

	// RecordSSSP is called after each heuristic table recomputation.
	// reached is the number of groups with a finite bound.
	RecordSSSP(duration time.Duration, reached int)
}

// Noop is a Collector that discards everything.
type Noop struct{}

func (Noop) RecordBuild(string, time.Duration, int, int, error) {}
func (Noop) RecordCacheHit(string)                              {}
func (Noop) RecordCacheMiss(string)                             {}
func (Noop) RecordSSSP(time.Duration, int)                      {}

// Basic provides simple in-memory counters.
// Useful for tests, the CLI, and debugging without a metrics backend.
type Basic struct {
	Builds          atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	CacheHits       atomic.Int64
	CacheMisses     atomic.Int64
	SSSPCount       atomic.Int64
	SSSPTotalNanos  atomic.Int64
	SSSPReached     atomic.Int64
}

// RecordBuild implements Collector.
func (b *Basic) RecordBuild(_ string, duration time.Duration, _, _ int, err error) {
	b.Builds.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordCacheHit implements Collector.
func (b *Basic) RecordCacheHit(string) { b.CacheHits.Add(1) }

// RecordCacheMiss implements Collector.
func (b *Basic) RecordCacheMiss(string) { b.CacheMisses.Add(1) }

// RecordSSSP implements Collector.
func (b *Basic) RecordSSSP(duration time.Duration, reached int) {
	b.SSSPCount.Add(1)
	b.SSSPTotalNanos.Add(duration.Nanoseconds())
	b.SSSPReached.Add(int64(reached))
}

// Stats returns a snapshot of current metrics.
func (b *Basic) Stats() Stats {
	return Stats{
		Builds:        b.Builds.Load(),
		BuildErrors:   b.BuildErrors.Load(),
		BuildAvgNanos: avg(b.BuildTotalNanos.Load(), b.Builds.Load()),
		CacheHits:     b.CacheHits.Load(),
		CacheMisses:   b.CacheMisses.Load(),
		SSSPCount:     b.SSSPCount.Load(),
		SSSPAvgNanos:  avg(b.SSSPTotalNanos.Load(), b.SSSPCount.Load()),
		SSSPReached:   b.SSSPReached.Load(),
		SSSPAvgReach:  avg(b.SSSPReached.Load(), b.SSSPCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// Stats is a point-in-time snapshot of Basic.
type Stats struct {
	Builds        int64
	BuildErrors   int64
	BuildAvgNanos int64
	CacheHits     int64
	CacheMisses   int64
	SSSPCount     int64
	SSSPAvgNanos  int64
	SSSPReached   int64 // groups with a finite bound, summed over sweeps
	SSSPAvgReach  int64
}

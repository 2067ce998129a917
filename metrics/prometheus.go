// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus is a Collector backed by Prometheus counters and histograms.
type Prometheus struct {
	builds       *prometheus.CounterVec
	buildErrors  *prometheus.CounterVec
	buildLatency *prometheus.HistogramVec
	groups       *prometheus.GaugeVec
	arcs         *prometheus.GaugeVec
	lookups      *prometheus.CounterVec
	ssspLatency  prometheus.Histogram
	ssspReached  prometheus.Histogram
}

// NewPrometheus creates the collector and registers it on reg under the
// given namespace. It panics if registration fails (duplicate namespace on
// the same registry), like prometheus.MustRegister.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	p := &Prometheus{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lowerbound_builds_total",
			Help:      "Lower-bound graph builds by direction.",
		}, []string{"direction"}),
		buildErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lowerbound_build_errors_total",
			Help:      "Failed lower-bound graph builds by direction.",
		}, []string{"direction"}),
		buildLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lowerbound_build_duration_seconds",
			Help:      "Time spent reducing a graph.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"direction"}),
		groups: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lowerbound_groups",
			Help:      "Groups in the most recently built lower-bound graph.",
		}, []string{"direction"}),
		arcs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lowerbound_arcs",
			Help:      "Arcs in the most recently built lower-bound graph.",
		}, []string{"direction"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lowerbound_cache_lookups_total",
			Help:      "Cache lookups by direction and result (hit or miss).",
		}, []string{"direction", "result"}),
		ssspLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "heuristic_sssp_duration_seconds",
			Help:      "Time spent recomputing a heuristic table.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		ssspReached: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "heuristic_sssp_reached_groups",
			Help:      "Groups with a finite bound after a recomputation.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	reg.MustRegister(
		p.builds, p.buildErrors, p.buildLatency, p.groups, p.arcs,
		p.lookups, p.ssspLatency, p.ssspReached,
	)

	return p
}

// RecordBuild implements Collector.
func (p *Prometheus) RecordBuild(dir string, duration time.Duration, groups, arcs int, err error) {
	p.builds.WithLabelValues(dir).Inc()
	p.buildLatency.WithLabelValues(dir).Observe(duration.Seconds())
	if err != nil {
		p.buildErrors.WithLabelValues(dir).Inc()
		return
	}
	p.groups.WithLabelValues(dir).Set(float64(groups))
	p.arcs.WithLabelValues(dir).Set(float64(arcs))
}

// RecordCacheHit implements Collector.
func (p *Prometheus) RecordCacheHit(dir string) { p.lookups.WithLabelValues(dir, "hit").Inc() }

// RecordCacheMiss implements Collector.
func (p *Prometheus) RecordCacheMiss(dir string) { p.lookups.WithLabelValues(dir, "miss").Inc() }

// RecordSSSP implements Collector.
func (p *Prometheus) RecordSSSP(duration time.Duration, reached int) {
	p.ssspLatency.Observe(duration.Seconds())
	p.ssspReached.Observe(float64(reached))
}

// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lowerbound/builder"
	"github.com/katalvlaran/lowerbound/config"
	"github.com/katalvlaran/lowerbound/core"
	"github.com/katalvlaran/lowerbound/heuristic"
	"github.com/katalvlaran/lowerbound/lbcache"
	"github.com/katalvlaran/lowerbound/loader"
	"github.com/katalvlaran/lowerbound/lowerbound"
	"github.com/katalvlaran/lowerbound/metrics"
)

const metricsNamespace = "lbtable"

// Demo grid used when no graph file is given.
const (
	demoRows    = 4
	demoCols    = 6
	demoLineRow = 1
	demoStopGap = 2
)

// app is the state shared by all subcommands, set up in PersistentPreRunE.
type app struct {
	// flags
	configPath string
	graphPath  string
	kind       string
	modes      []string
	arriveBy   bool
	verbose    bool
	dumpMetric bool

	// onReload, when set, sees every graph the watch command installs.
	onReload func(*core.Graph)

	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Prometheus
	cache    *lbcache.Cache
}

func newRootCmd() *cobra.Command { return (&app{}).command() }

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "lbtable",
		Short:         "Lower-bound heuristic tables for multi-modal routing graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
			if a.dumpMetric {
				return a.writeMetrics(cmd)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "lbtable.yaml", "YAML configuration file (defaults when absent)")
	pf.StringVarP(&a.graphPath, "graph", "g", "", "JSON graph file (demo grid when empty)")
	pf.StringVar(&a.kind, "heuristic", "", "heuristic kind: lowerbound, euclidean, zero (overrides config)")
	pf.StringSliceVar(&a.modes, "modes", nil, "allowed modes, e.g. walk,transit (overrides config)")
	pf.BoolVar(&a.arriveBy, "arrive-by", false, "search backward from the destination (overrides config)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.dumpMetric, "metrics", false, "print Prometheus metrics after the command")

	root.AddCommand(newTableCmd(a), newRouteCmd(a), newWarmCmd(a), newWatchCmd(a))

	return root
}

// setup loads the config, applies flag overrides and wires logger, metrics
// and cache.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("heuristic") {
		cfg.Heuristic.Kind = a.kind
	}
	if flags.Changed("modes") {
		cfg.Traverse.Modes = a.modes
	}
	if flags.Changed("arrive-by") {
		cfg.Traverse.ArriveBy = a.arriveBy
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger, err = cfg.Logging.Build(a.verbose); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.registry = prometheus.NewRegistry()
	a.metrics = metrics.NewPrometheus(a.registry, metricsNamespace)
	a.cache = lbcache.New(
		lbcache.WithLogger(a.logger.Named("lbcache")),
		lbcache.WithMetrics(a.metrics),
		lbcache.WithBuildOptions(cfg.BuildOptions()...),
	)

	return nil
}

// graph loads --graph, or builds the demo grid.
func (a *app) graph() (*core.Graph, error) {
	if a.graphPath != "" {
		return loader.LoadFile(a.graphPath, loader.WithLogger(a.logger.Named("loader")))
	}

	return builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.TravelTimeWeightFn(builder.DefaultSpacing, core.DefaultWalkSpeed, 0))},
		builder.Grid(demoRows, demoCols),
		builder.Stops(demoLineRow, demoStopGap),
	)
}

// newHeuristic builds the configured heuristic for g.
func (a *app) newHeuristic(ctx context.Context, g *core.Graph) (heuristic.RemainingWeightHeuristic, error) {
	kind := a.cfg.HeuristicKind()
	if a.cfg.Heuristic.Warm && kind == heuristic.KindLowerBound {
		if err := a.cache.Warm(ctx, g); err != nil {
			return nil, err
		}
	}

	return heuristic.New(kind, heuristic.Deps{
		Cache:     a.cache,
		Graph:     g,
		Direction: lowerbound.DirectionOf(a.cfg.TraverseOptions()),
		Logger:    a.logger.Named("heuristic"),
		Metrics:   a.metrics,
	})
}

// endpoint resolves id to a vertex of g.
func endpoint(g *core.Graph, id string) (*core.Vertex, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return nil, fmt.Errorf("vertex %q: %w", id, err)
	}

	return v, nil
}

func (a *app) writeMetrics(cmd *cobra.Command) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	w := cmd.ErrOrStderr()
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}

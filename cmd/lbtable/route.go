// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lowerbound/astar"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route FROM TO",
		Short: "Run a reference A* search from FROM to TO",
		Long: `Searches the graph with the configured heuristic and prints the path in
travel order, its cost and the number of expanded vertices. With --arrive-by
the search runs backward from TO.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			from, err := endpoint(g, args[0])
			if err != nil {
				return err
			}
			to, err := endpoint(g, args[1])
			if err != nil {
				return err
			}
			h, err := a.newHeuristic(cmd.Context(), g)
			if err != nil {
				return err
			}

			opts := a.cfg.TraverseOptions()
			start, goal := from, to
			if opts.ArriveBy {
				start, goal = to, from
			}

			began := time.Now()
			res, err := astar.Search(cmd.Context(), g, start, goal, h, opts)
			if err != nil {
				return fmt.Errorf("route %s → %s: %w", from.ID, to.ID, err)
			}
			path := res.Path
			if opts.ArriveBy {
				path = slices.Clone(path)
				slices.Reverse(path)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:     %s\n", strings.Join(path, " → "))
			fmt.Fprintf(out, "cost:     %.2f\n", res.TotalCost)
			fmt.Fprintf(out, "expanded: %d\n", res.ExpandedNodes)

			a.logger.Info("routed",
				zap.String("from", from.ID),
				zap.String("to", to.ID),
				zap.Stringer("kind", a.cfg.HeuristicKind()),
				zap.Bool("arrive_by", opts.ArriveBy),
				zap.Float64("cost", res.TotalCost),
				zap.Int("expanded", res.ExpandedNodes),
				zap.Duration("duration", time.Since(began)))
			return nil
		},
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lowerbound/heuristic"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table TARGET",
		Short: "Print the heuristic estimate from every vertex to TARGET",
		Long: `Builds the configured heuristic, initializes it for TARGET and prints,
for each vertex, its group and the estimate a search would see there.
With --arrive-by the estimate is the bound from TARGET to the vertex.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			target, err := endpoint(g, args[0])
			if err != nil {
				return err
			}
			h, err := a.newHeuristic(cmd.Context(), g)
			if err != nil {
				return err
			}

			opts := a.cfg.TraverseOptions()
			h.ComputeInitialWeight(heuristic.NewState(target, opts), target)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERTEX\tGROUP\tESTIMATE")
			for _, id := range g.Vertices() {
				v, err := g.Vertex(id)
				if err != nil {
					return err
				}
				s := heuristic.NewState(v, opts)
				est := h.ComputeForwardWeight(s, target)
				if opts.ArriveBy {
					est = h.ComputeReverseWeight(s, target)
				}
				fmt.Fprintf(tw, "%s\t%d\t%.2f\n", id, v.Group, est)
			}
			if err = tw.Flush(); err != nil {
				return err
			}

			a.logger.Info("printed heuristic table",
				zap.String("target", target.ID),
				zap.Stringer("kind", a.cfg.HeuristicKind()),
				zap.Int("vertices", g.VertexCount()))
			return nil
		},
	}
}

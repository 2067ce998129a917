// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lowerbound/lowerbound"
)

func newWarmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "warm",
		Short: "Build the lower-bound graph for both directions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			if err = a.cache.Warm(cmd.Context(), g); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, dir := range lowerbound.Directions {
				lg, err := a.cache.Get(g, dir)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-9s groups=%d arcs=%d\n", dir, lg.GroupCount(), lg.ArcCount())
			}
			return nil
		},
	}
}

// SPDX-License-Identifier: MIT

// Command lbtable builds lower-bound heuristic tables over a routing graph,
// runs reference A* searches with them, and warms the lower-bound cache.
//
//	lbtable table --graph city.json stop:2,4
//	lbtable route --graph city.json --heuristic euclidean 0,0 3,3
//	lbtable warm  --metrics
//
// Without --graph a demo street grid with one transit line is used.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

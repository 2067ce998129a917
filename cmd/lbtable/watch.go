// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lowerbound/core"
)

// reloadDebounce coalesces the burst of events an editor save produces.
const reloadDebounce = 100 * time.Millisecond

var errWatchNeedsGraph = errors.New("watch requires --graph")

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the lower-bound graphs whenever the --graph file changes",
		Long: `Loads --graph, warms both directions, then watches the file. Each change
loads a new graph, drops the old graph's cache entries and warms the new one.
A file that fails to load keeps the previous graph. Runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.graphPath == "" {
				return errWatchNeedsGraph
			}
			path, err := filepath.Abs(a.graphPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			current, err := a.graph()
			if err != nil {
				return err
			}
			if err = a.install(cmd, current); err != nil {
				return err
			}

			w, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer w.Close()
			// Watch the directory: editors often replace the file by rename.
			if err = w.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
			}
			a.logger.Info("watching graph file", zap.String("path", path))

			debounce := time.NewTimer(reloadDebounce)
			debounce.Stop()
			defer debounce.Stop()
			for {
				select {
				case <-ctx.Done():
					a.logger.Info("stopped watching graph file", zap.String("path", path))
					return nil

				case ev, ok := <-w.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
						continue
					}
					debounce.Reset(reloadDebounce)

				case err, ok := <-w.Errors:
					if !ok {
						return nil
					}
					a.logger.Error("graph watcher error", zap.Error(err))

				case <-debounce.C:
					next, err := a.reload(cmd, current)
					if err != nil {
						a.logger.Error("failed to reload graph, keeping previous", zap.String("path", path), zap.Error(err))
						continue
					}
					current = next
				}
			}
		},
	}
}

// reload loads --graph again and installs it in place of current. On any
// failure current stays installed and cached.
func (a *app) reload(cmd *cobra.Command, current *core.Graph) (*core.Graph, error) {
	next, err := a.graph()
	if err != nil {
		return nil, err
	}
	if err = a.install(cmd, next); err != nil {
		a.cache.Forget(next)
		return nil, fmt.Errorf("failed to warm reloaded graph: %w", err)
	}
	a.cache.Forget(current)

	return next, nil
}

// install warms g and reports it.
func (a *app) install(cmd *cobra.Command, g *core.Graph) error {
	if err := a.cache.Warm(cmd.Context(), g); err != nil {
		return err
	}
	st := g.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "loaded graph %s vertices=%d edges=%d groups=%d\n", g.ID(), st.Vertices, st.Edges, st.Groups)
	if a.onReload != nil {
		a.onReload(g)
	}

	return nil
}

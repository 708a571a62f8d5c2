//go:build !gnuplot

package main

import "log/slog"

// Display is a no-op in builds without the gnuplot tag; the chart is only
// saved to disk.
func Display(c *Chart) error {
	slog.Debug("built without gnuplot support, skipping viewer", "methods", len(c.Ticks))
	return nil
}

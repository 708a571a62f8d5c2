//go:build gnuplot

package main

import (
	"log/slog"
	"os"

	"github.com/Arafatk/glot"
	"github.com/pkg/errors"
)

// Display shows the chart data in a gnuplot window: the jittered points of
// every method under its tick label. The boxes themselves are only in the
// saved image. Without a display it does nothing. From an interactive
// terminal it waits for Enter before closing the viewer.
//
// glot looks gnuplot up when the program starts, so binaries built with the
// gnuplot tag need gnuplot on PATH.
func Display(c *Chart) error {

	if !hasDisplay() {
		slog.Debug("no display available, skipping viewer")
		return nil
	}

	dimensions := 2
	persist := true
	debug := false
	gp, err := glot.NewPlot(dimensions, persist, debug)
	if err != nil {
		slog.Debug("gnuplot unavailable, skipping viewer", "error", err)
		return nil
	}
	defer gp.Close()

	if err := gp.SetTitle(c.Plot.Title.Text); err != nil {
		return errors.Wrap(err, "gnuplot title")
	}
	if err := gp.SetYLabel(c.Plot.Y.Label.Text); err != nil {
		return errors.Wrap(err, "gnuplot y label")
	}
	if err := gp.SetXrange(0, len(c.Ticks)+1); err != nil {
		return errors.Wrap(err, "gnuplot x range")
	}
	if len(c.Ticks) > 0 {
		if err := gp.Cmd("%s", xtics(c)); err != nil {
			return errors.Wrap(err, "gnuplot x tics")
		}
	}

	for _, g := range pointGroups(c) {
		if err := gp.AddPointGroup(g.name, "points", g.data); err != nil {
			return errors.Wrapf(err, "gnuplot points for %q", g.name)
		}
	}

	if isTerminal(os.Stdin) {
		return waitForEnter(os.Stdin, os.Stderr)
	}
	return nil
}

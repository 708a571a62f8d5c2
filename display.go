package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

type pointGroup struct {
	name string
	data [][]float64
}

// pointGroups splits the scatter overlays into gnuplot x/y columns.
func pointGroups(c *Chart) []pointGroup {
	groups := make([]pointGroup, 0, len(c.Points))
	for i, s := range c.Points {
		xs := make([]float64, len(s.XYs))
		ys := make([]float64, len(s.XYs))
		for j, pt := range s.XYs {
			xs[j] = pt.X
			ys[j] = pt.Y
		}
		groups = append(groups, pointGroup{
			name: c.Ticks[i].Label,
			data: [][]float64{xs, ys},
		})
	}
	return groups
}

// xtics labels gnuplot's x axis with the method names.
func xtics(c *Chart) string {
	labels := make([]string, len(c.Ticks))
	for i, t := range c.Ticks {
		labels[i] = fmt.Sprintf("%q %g", t.Label, t.Value)
	}
	return "set xtics rotate by 20 right (" + strings.Join(labels, ", ") + ")"
}

func hasDisplay() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// waitForEnter blocks until a newline (or end of input) arrives on r.
func waitForEnter(r io.Reader, prompt io.Writer) error {
	fmt.Fprintln(prompt, "Press Enter to close the viewer")
	if _, err := bufio.NewReader(r).ReadString('\n'); err != nil && err != io.EOF {
		return errors.Wrap(err, "wait for enter")
	}
	return nil
}

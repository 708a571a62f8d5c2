package main

import (
	"image/color"
	"log/slog"
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch

	// Share of the canvas width left for data once the y axis is laid out.
	dataAreaFraction = 0.85
	// Share of each method's slot taken by its box.
	boxFraction = 0.6

	jitterStdDev = 0.04
)

// Jitter is the source of horizontal scatter offsets. *rand.Rand satisfies it.
type Jitter interface {
	NormFloat64() float64
}

// Chart is a rendered benchmark plot: one box and one scatter overlay per
// method, in result order.
type Chart struct {
	Plot   *plot.Plot
	Boxes  []*plotter.BoxPlot
	Points []*plotter.Scatter
	Ticks  []plot.Tick
	// Layers lists the plotters in the order they were added, back to front.
	Layers []plot.Plotter

	Width, Height vg.Length
}

// Render builds the box plot for rows. Method i sits at x = i+1; its raw
// values are scattered around that position with N(0, 0.04) jitter drawn
// from rng.
func Render(rows ResultSet, rng Jitter) (*Chart, error) {

	ticks := make([]plot.Tick, len(rows))
	for i, row := range rows {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: row.Method}
	}

	p := prepPlot("Benchmark results", "", "Time (sec)", ticks)

	c := &Chart{
		Plot:   p,
		Ticks:  ticks,
		Width:  chartWidth,
		Height: chartHeight,
	}

	// Grid goes in first so it stays behind the boxes and points.
	c.add(gridLines())

	if len(rows) == 0 {
		return c, nil
	}

	p.X.Min = 0.5
	p.X.Max = float64(len(rows)) + 0.5

	width := boxWidth(len(rows))

	for i, row := range rows {
		loc := float64(i + 1)

		box, err := plotter.NewBoxPlot(width, loc, plotter.Values(row.Values))
		if err != nil {
			return nil, errors.Wrapf(err, "box for %q", row.Method)
		}
		box.FillColor = palette(i)
		setQuartiles(box, row.Values)
		// Every value is drawn by the scatter overlay, outliers included.
		box.Outside = nil

		pts := make(plotter.XYs, len(row.Values))
		for j, v := range row.Values {
			pts[j].X = loc + rng.NormFloat64()*jitterStdDev
			pts[j].Y = v
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "points for %q", row.Method)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  color.NRGBA{A: pointAlpha},
			Radius: vg.Points(2),
			Shape:  draw.CircleGlyph{},
		}

		slog.Debug("box",
			"method", row.Method,
			"n", len(row.Values),
			"q1", box.Quartile1,
			"median", box.Median,
			"q3", box.Quartile3,
		)

		c.Boxes = append(c.Boxes, box)
		c.Points = append(c.Points, scatter)
	}

	for _, box := range c.Boxes {
		c.add(box)
	}
	for _, scatter := range c.Points {
		c.add(scatter)
	}

	return c, nil
}

func (c *Chart) add(p plot.Plotter) {
	c.Plot.Add(p)
	c.Layers = append(c.Layers, p)
}

// setQuartiles replaces gonum's hinge quartiles with linearly interpolated
// percentiles (rank (n-1)*p) and moves the whiskers to the furthest values
// inside 1.5 IQR of the box.
func setQuartiles(box *plotter.BoxPlot, values []float64) {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	box.Quartile1 = percentile(sorted, 0.25)
	box.Median = percentile(sorted, 0.5)
	box.Quartile3 = percentile(sorted, 0.75)

	iqr := box.Quartile3 - box.Quartile1
	low := box.Quartile1 - 1.5*iqr
	high := box.Quartile3 + 1.5*iqr

	box.AdjLow = box.Quartile1
	box.AdjHigh = box.Quartile3
	for _, v := range sorted {
		if v >= low {
			box.AdjLow = math.Min(v, box.Quartile1)
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= high {
			box.AdjHigh = math.Max(sorted[i], box.Quartile3)
			break
		}
	}
}

// percentile interpolates linearly between the closest ranks of sorted.
func percentile(sorted []float64, p float64) float64 {
	rank := float64(len(sorted)-1) * p
	lo := int(math.Floor(rank))
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func boxWidth(n int) vg.Length {
	slot := chartWidth * dataAreaFraction / vg.Length(n)
	return slot * boxFraction
}

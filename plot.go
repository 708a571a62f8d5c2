package main

import (
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	fillAlpha  = 153 // 0.6
	pointAlpha = 179 // 0.7
	gridAlpha  = 153 // 0.6

	tickRotation = 20 * math.Pi / 180
)

func prepPlot(
	title, xlabel, ylabel string,
	xticks []plot.Tick,
) *plot.Plot {

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(8)

	p.X.Label.Text = xlabel
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Tick.Label.Font.Variant = "Sans"
	p.X.Tick.Label.Font.Size = vg.Points(11)
	p.X.Tick.Label.Rotation = tickRotation
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Marker = plot.ConstantTicks(xticks)

	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Tick.Label.Font.Variant = "Sans"
	p.Y.Tick.Label.Font.Size = vg.Points(11)

	return p
}

// gridLines returns dashed horizontal lines at the y ticks.
func gridLines() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = nil
	g.Horizontal.Color = color.NRGBA{R: 176, G: 176, B: 176, A: gridAlpha}
	g.Horizontal.Width = vg.Points(0.8)
	g.Horizontal.Dashes = []vg.Length{vg.Points(3.7), vg.Points(1.6)}
	return g
}

var boxColors = []color.NRGBA{
	{R: 0xFF, G: 0x99, B: 0x99, A: fillAlpha},
	{R: 0x99, G: 0xFF, B: 0x99, A: fillAlpha},
	{R: 0x99, G: 0x99, B: 0xFF, A: fillAlpha},
	{R: 0xFF, G: 0xCC, B: 0x99, A: fillAlpha},
	{R: 0xCC, G: 0x99, B: 0xFF, A: fillAlpha},
	{R: 0x66, G: 0xCC, B: 0xCC, A: fillAlpha},
}

// palette returns the fill colour for the brush-th box, wrapping around the
// six colours.
func palette(brush int) color.NRGBA {
	return boxColors[brush%len(boxColors)]
}

// Save writes c as a PNG rendered at dpi dots per inch.
func Save(c *Chart, path string, dpi int) error {
	if dpi <= 0 {
		return errors.Errorf("invalid dpi %d", dpi)
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(c.Width, c.Height),
		vgimg.UseDPI(dpi),
	)
	c.Plot.Draw(draw.New(canvas))

	return savePlot(path, vgimg.PngCanvas{Canvas: canvas})
}

// SaveAs writes c in one of the vector formats gonum/plot knows
// ("svg", "pdf", "eps").
func SaveAs(c *Chart, path, format string) error {
	w, err := c.Plot.WriterTo(c.Width, c.Height, format)
	if err != nil {
		return errors.Wrapf(err, "%s writer", format)
	}
	return savePlot(path, w)
}

func savePlot(path string, w io.WriterTo) (err error) {

	// Make the output folder if it doesn't already exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create output folder")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	if _, err := w.WriteTo(f); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

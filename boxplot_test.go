package main

import (
	"image/color"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/plotter"
	"github.com/stretchr/testify/require"
)

type fixedJitter float64

func (j fixedJitter) NormFloat64() float64 { return float64(j) }

func TestRender(t *testing.T) {
	rows := ResultSet{
		{Method: "methodA", Values: []float64{1, 2, 3}},
		{Method: "methodB", Values: []float64{4, 5}},
	}

	c, err := Render(rows, fixedJitter(0))
	require.NoError(t, err)

	require.Len(t, c.Boxes, 2)
	require.Len(t, c.Points, 2)
	require.Len(t, c.Ticks, 2)

	assert.Equal(t, "methodA", c.Ticks[0].Label)
	assert.Equal(t, "methodB", c.Ticks[1].Label)
	assert.Equal(t, 1.0, c.Ticks[0].Value)
	assert.Equal(t, 2.0, c.Ticks[1].Value)

	assert.Equal(t, 1.0, c.Boxes[0].Location)
	assert.Equal(t, 2.0, c.Boxes[1].Location)
	assert.Equal(t, 2.0, c.Boxes[0].Median)

	assert.Equal(t, "Benchmark results", c.Plot.Title.Text)
	assert.Equal(t, "Time (sec)", c.Plot.Y.Label.Text)
	assert.InDelta(t, 20*math.Pi/180, c.Plot.X.Tick.Label.Rotation, 1e-12)

	for i, s := range c.Points {
		require.Len(t, s.XYs, len(rows[i].Values))
		for j, pt := range s.XYs {
			assert.Equal(t, float64(i+1), pt.X)
			assert.Equal(t, rows[i].Values[j], pt.Y)
		}
	}
}

func TestRenderJitterScale(t *testing.T) {
	rows := ResultSet{{Method: "m", Values: []float64{1, 2}}}

	c, err := Render(rows, fixedJitter(1))
	require.NoError(t, err)

	for _, pt := range c.Points[0].XYs {
		assert.InDelta(t, 1.04, pt.X, 1e-12)
	}
}

func TestRenderJitterIsReproducible(t *testing.T) {
	rows := ResultSet{
		{Method: "a", Values: []float64{1, 1, 1, 1, 1, 1, 1, 1}},
		{Method: "b", Values: []float64{2, 2, 2, 2}},
	}

	first, err := Render(rows, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	second, err := Render(rows, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := range rows {
		assert.Equal(t, first.Points[i].XYs, second.Points[i].XYs)
		for _, pt := range first.Points[i].XYs {
			assert.InDelta(t, float64(i+1), pt.X, 0.5)
		}
	}
}

func TestRenderColoursCycle(t *testing.T) {
	var rows ResultSet
	for i := 0; i < 14; i++ {
		rows = append(rows, ResultRow{Method: "m" + strconv.Itoa(i), Values: []float64{float64(i)}})
	}

	c, err := Render(rows, fixedJitter(0))
	require.NoError(t, err)
	require.Len(t, c.Boxes, 14)

	for i, box := range c.Boxes {
		assert.Equal(t, palette(i%6), box.FillColor, "box %d", i)
		assert.Equal(t, c.Boxes[i%6].FillColor, box.FillColor)
		assert.Empty(t, box.Outside)
	}
}

func TestRenderNoRows(t *testing.T) {
	c, err := Render(nil, fixedJitter(0))
	require.NoError(t, err)

	assert.Empty(t, c.Boxes)
	assert.Empty(t, c.Points)
	assert.Empty(t, c.Ticks)
	assert.NotNil(t, c.Plot)
}

func TestRenderRejectsNaN(t *testing.T) {
	rows := ResultSet{{Method: "broken", Values: []float64{1, math.NaN()}}}

	_, err := Render(rows, fixedJitter(0))
	assert.Error(t, err)
}

func TestBoxWidthShrinksWithRows(t *testing.T) {
	assert.Greater(t, boxWidth(2), boxWidth(10))
	assert.InDelta(t, float64(boxWidth(1)), float64(2*boxWidth(2)), 1e-9)
}

func TestRenderQuartiles(t *testing.T) {
	tests := []struct {
		name            string
		values          []float64
		q1, median, q3  float64
		adjLow, adjHigh float64
	}{
		{name: "three", values: []float64{3, 1, 2}, q1: 1.5, median: 2, q3: 2.5, adjLow: 1, adjHigh: 3},
		{name: "five", values: []float64{1, 2, 3, 4, 5}, q1: 2, median: 3, q3: 4, adjLow: 1, adjHigh: 5},
		{name: "four", values: []float64{1, 2, 3, 4}, q1: 1.75, median: 2.5, q3: 3.25, adjLow: 1, adjHigh: 4},
		{name: "single", values: []float64{0.5}, q1: 0.5, median: 0.5, q3: 0.5, adjLow: 0.5, adjHigh: 0.5},
		{name: "outlier above", values: []float64{1, 2, 3, 4, 100}, q1: 2, median: 3, q3: 4, adjLow: 1, adjHigh: 4},
		{name: "outlier below", values: []float64{-50, 10, 11, 12, 13}, q1: 10, median: 11, q3: 12, adjLow: 10, adjHigh: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Render(ResultSet{{Method: tt.name, Values: tt.values}}, fixedJitter(0))
			require.NoError(t, err)
			require.Len(t, c.Boxes, 1)

			box := c.Boxes[0]
			assert.InDelta(t, tt.q1, box.Quartile1, 1e-12, "q1")
			assert.InDelta(t, tt.median, box.Median, 1e-12, "median")
			assert.InDelta(t, tt.q3, box.Quartile3, 1e-12, "q3")
			assert.InDelta(t, tt.adjLow, box.AdjLow, 1e-12, "low whisker")
			assert.InDelta(t, tt.adjHigh, box.AdjHigh, 1e-12, "high whisker")
		})
	}
}

func TestRenderGridBehindData(t *testing.T) {
	c, err := Render(ResultSet{
		{Method: "methodA", Values: []float64{1, 2, 3}},
		{Method: "methodB", Values: []float64{4, 5}},
	}, fixedJitter(0))
	require.NoError(t, err)

	require.Len(t, c.Layers, 5)
	grid, ok := c.Layers[0].(*plotter.Grid)
	require.True(t, ok, "first layer is %T", c.Layers[0])

	assert.Nil(t, grid.Vertical.Color)
	assert.Equal(t, color.NRGBA{R: 176, G: 176, B: 176, A: 153}, grid.Horizontal.Color)
	assert.NotEmpty(t, grid.Horizontal.Dashes)

	for i, layer := range c.Layers[1:3] {
		assert.Same(t, c.Boxes[i], layer)
	}
	for i, layer := range c.Layers[3:] {
		assert.Same(t, c.Points[i], layer)
	}
}

func TestRenderEmptyChartKeepsGrid(t *testing.T) {
	c, err := Render(nil, fixedJitter(0))
	require.NoError(t, err)

	require.Len(t, c.Layers, 1)
	assert.IsType(t, &plotter.Grid{}, c.Layers[0])
}

//go:build !gnuplot

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithoutGnuplot(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv("DISPLAY", ":0")

	cfg := testConfig(t, "methodA,1.0,2.0,3.0\nmethodB,4.0,5.0\n")
	cfg.Show = true

	require.NoError(t, run(cfg))
	assert.FileExists(t, cfg.OutputPath("png"))
}

func TestDisplayWithoutGnuplotTag(t *testing.T) {
	t.Setenv("DISPLAY", ":0")
	assert.NoError(t, Display(sampleChart(t)))
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/deposit/axis"
	"github.com/katalvlaran/deposit/histogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	e := app.Run(append([]string{"histbench", "--log-level", "E"}, args...))
	return buf.String(), e
}

func TestRunGenerated(t *testing.T) {
	out, e := runApp(t, "--npart", "2000", "--dims", "2", "--bins", "10", "--bins", "8", "--repeat", "1")
	require.NoError(t, e)

	assert.Contains(t, out, "=== Histogram 2D bins: [10 8], npart: 2.0e+03 ===")
	for _, label := range []string{"ngp serial", "ngp", "cic", "tsc"} {
		assert.Contains(t, out, label)
	}
	// header, then baseline + 3 orders, with and without weights
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2+8)
}

func TestRunConfigAndSamples(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "hist.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("shape: tsc\naxes: [{bins: 4, low: 0, high: 1}]\n"), 0o600))
	csv := filepath.Join(dir, "samples.csv")
	require.NoError(t, os.WriteFile(csv, []byte("x,w\n0.1,1\n0.6,2\n0.6,0.5\n0.99,1\n"), 0o600))

	out, e := runApp(t, "--config", cfg, "--samples", csv, "--weighted", "--repeat", "2")
	require.NoError(t, e)

	assert.Contains(t, out, "gonum stat.Histogram")
	assert.Contains(t, out, "tsc")
	assert.NotContains(t, out, "cic")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2+2)
}

func TestRunRejectsBadFlags(t *testing.T) {
	_, e := runApp(t, "--dims", "4")
	assert.ErrorIs(t, e, histogram.ErrDimensions)

	_, e = runApp(t, "--dims", "2", "--bins", "10")
	assert.ErrorIs(t, e, errBins)

	_, e = runApp(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, e, os.ErrNotExist)
}

func TestLoadSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y,z,w\n1,2,3,4\n5,6,7,8\n"), 0o600))

	coords, weights, e := loadSamples(path, 3, true)
	require.NoError(t, e)
	assert.Equal(t, [][]float64{{1, 5}, {2, 6}, {3, 7}}, coords)
	assert.Equal(t, []float64{4, 8}, weights)

	coords, weights, e = loadSamples(path, 2, false)
	require.NoError(t, e)
	assert.Len(t, coords, 2)
	assert.Nil(t, weights)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("x,w\n"), 0o600))
	_, _, e = loadSamples(empty, 1, false)
	assert.ErrorIs(t, e, errNoSamples)
}

func TestLoadSamplesRequiresColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xw.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,w\n0.1,1\n0.2,2\n"), 0o600))

	_, _, e := loadSamples(path, 1, true)
	require.NoError(t, e)

	_, _, e = loadSamples(path, 2, false)
	assert.ErrorIs(t, e, errMissingColumn)
	assert.Contains(t, e.Error(), `"y"`)

	_, _, e = loadSamples(path, 3, true)
	assert.ErrorIs(t, e, errMissingColumn)

	noW := filepath.Join(t.TempDir(), "xyz.csv")
	require.NoError(t, os.WriteFile(noW, []byte("x,y,z\n1,2,3\n"), 0o600))
	_, _, e = loadSamples(noW, 3, true)
	assert.ErrorIs(t, e, errMissingColumn)
	assert.Contains(t, e.Error(), `"w"`)

	blank := filepath.Join(t.TempDir(), "blank.csv")
	require.NoError(t, os.WriteFile(blank, nil, 0o600))
	_, _, e = loadSamples(blank, 1, false)
	assert.ErrorIs(t, e, errNoSamples)

	_, e = runApp(t, "--dims", "2", "--samples", path)
	assert.ErrorIs(t, e, errMissingColumn)
}

func TestSortedInRange(t *testing.T) {
	spec := axis.Spec{Bins: 2, Low: 0, High: 1}
	xs, ws := sortedInRange(spec, []float64{0.7, -1, 0.2, 1, 0.5}, []float64{1, 2, 3, 4, 5})
	assert.Equal(t, []float64{0.2, 0.5, 0.7}, xs)
	assert.Equal(t, []float64{3, 5, 1}, ws)
}

func TestGenerateSamples(t *testing.T) {
	coords, weights := generateSamples(3, 100)
	require.Len(t, coords, 3)
	for _, c := range append(coords, weights) {
		require.Len(t, c, 100)
		for _, v := range c {
			assert.True(t, v >= 0 && v < 1)
		}
	}
}

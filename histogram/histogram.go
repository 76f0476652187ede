// SPDX-License-Identifier: MIT

package histogram

import (
	"time"

	"github.com/katalvlaran/deposit/axis"
	"github.com/katalvlaran/deposit/grid"
	"github.com/katalvlaran/deposit/shape"
	"go.uber.org/zap"
)

// ---------- call tags (ConfigurationError.Op) ----------

const (
	opHistogram1D = "Histogram1D"
	opHistogram2D = "Histogram2D"
	opHistogram3D = "Histogram3D"
	opHistogramND = "HistogramND"
)

// Result is a finished histogram. The caller owns every field.
type Result struct {
	// Grid holds the accumulated weight per bin, shape = (Axes[0].Bins, Axes[1].Bins, ...).
	Grid *grid.Dense
	// Edges holds Bins+1 bin boundaries per axis.
	Edges [][]float64
	// Axes and Order echo the configuration used.
	Axes  []axis.Spec
	Order shape.Order
	// Samples is the number of input samples.
	Samples int
	// Dropped counts samples that touched no bin on at least one axis
	// (out of range, NaN or ±Inf) and therefore contributed nothing.
	Dropped int
}

// Dims returns the dimensionality of the histogram.
func (r *Result) Dims() int { return len(r.Axes) }

// Total returns the weight deposited into the grid.
func (r *Result) Total() float64 { return r.Grid.Sum() }

// Histogram1D deposits samples x (optionally weighted) into bins equal-width
// bins over [low, high) using the kernel order.
// weights == nil means weight 1 for every sample.
func Histogram1D(x, weights []float64, bins int, low, high float64, order shape.Order, opts ...Option) (*Result, error) {
	axes := []axis.Spec{{Bins: bins, Low: low, High: high}}

	return run(opHistogram1D, [][]float64{x}, weights, axes, order, opts)
}

// Histogram2D is the two-dimensional Histogram1D. Grid rows follow x, columns follow y.
// rng[k] is the (low, high) pair of axis k.
func Histogram2D(x, y, weights []float64, bins [2]int, rng [2][2]float64, order shape.Order, opts ...Option) (*Result, error) {
	axes := []axis.Spec{
		{Bins: bins[0], Low: rng[0][0], High: rng[0][1]},
		{Bins: bins[1], Low: rng[1][0], High: rng[1][1]},
	}

	return run(opHistogram2D, [][]float64{x, y}, weights, axes, order, opts)
}

// Histogram3D is the three-dimensional Histogram1D; the grid is indexed (x, y, z).
func Histogram3D(x, y, z, weights []float64, bins [3]int, rng [3][2]float64, order shape.Order, opts ...Option) (*Result, error) {
	axes := []axis.Spec{
		{Bins: bins[0], Low: rng[0][0], High: rng[0][1]},
		{Bins: bins[1], Low: rng[1][0], High: rng[1][1]},
		{Bins: bins[2], Low: rng[2][0], High: rng[2][1]},
	}

	return run(opHistogram3D, [][]float64{x, y, z}, weights, axes, order, opts)
}

// HistogramND deposits samples with one coordinate array per axis.
// MAIN DESCRIPTION:
//   - Shared implementation behind Histogram1D/2D/3D.
//
// Implementation:
//   - Stage 1: validate axes, order and array lengths; nothing is allocated on failure.
//   - Stage 2: build one axis.Binner per axis and the zero grid.
//   - Stage 3: deposit every sample, serially or via per-worker grids.
//   - Stage 4: attach bin edges and counters.
//
// Errors:
//   - *ConfigurationError matching ErrConfiguration and one or more of
//     ErrDimensions, ErrLengthMismatch, ErrInvalidBins, ErrInvalidRange,
//     ErrUnsupportedOrder, grid.ErrTooLarge.
//
// Complexity:
//   - Time O(N·support^D + cells·workers), Space O(cells·workers).
func HistogramND(coords [][]float64, weights []float64, axes []axis.Spec, order shape.Order, opts ...Option) (*Result, error) {
	return run(opHistogramND, coords, weights, axes, order, opts)
}

func run(op string, coords [][]float64, weights []float64, axes []axis.Spec, order shape.Order, opts []Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := validateCall(op, coords, weights, axes, order); err != nil {
		return nil, err
	}

	binners := make([]*axis.Binner, len(axes))
	extents := make([]int, len(axes))
	for k, s := range axes {
		b, err := axis.NewBinner(s, order)
		if err != nil {
			return nil, &ConfigurationError{Op: op, Err: err}
		}
		binners[k] = b
		extents[k] = s.Bins
	}
	g, err := grid.New(extents...)
	if err != nil {
		return nil, &ConfigurationError{Op: op, Err: err}
	}

	started := time.Now()
	n := len(coords[0])
	workers := o.plan(n, g.Len())
	var dropped int
	if workers == 1 {
		dropped = depositSerial(g, binners, coords, weights)
	} else {
		dropped = depositParallel(g, binners, coords, weights, workers)
	}

	res := &Result{
		Grid:    g,
		Edges:   make([][]float64, len(axes)),
		Axes:    append([]axis.Spec(nil), axes...),
		Order:   order,
		Samples: n,
		Dropped: dropped,
	}
	for k, s := range axes {
		res.Edges[k] = s.Edges()
	}

	if ce := o.logger.Check(zap.DebugLevel, "histogram computed"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("dims", len(axes)),
			zap.Stringer("order", order),
			zap.Int("samples", n),
			zap.Int("dropped", dropped),
			zap.Int("cells", g.Len()),
			zap.Int("workers", workers),
			zap.Duration("elapsed", time.Since(started)),
		)
	}

	return res, nil
}

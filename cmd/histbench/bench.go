// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/deposit/axis"
	"github.com/katalvlaran/deposit/histogram"
	"github.com/katalvlaran/deposit/shape"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// benchParams holds one timing session.
type benchParams struct {
	axes    []axis.Spec
	orders  []shape.Order
	opts    []histogram.Option
	coords  [][]float64
	weights []float64
	repeat  int
	onlyW   bool
	logger  *zap.Logger
}

// timing is one report row.
type timing struct {
	label    string
	weighted bool
	perCall  time.Duration
	baseline time.Duration
}

// measure returns the mean wall time of repeat calls of f.
func measure(repeat int, f func() error) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < repeat; i++ {
		if e := f(); e != nil {
			return 0, e
		}
	}
	return time.Since(start) / time.Duration(repeat), nil
}

// baselineFunc returns the plain histogram used as reference.
// 1D: gonum stat.Histogram on presorted in-range data (sorting is not timed).
// 2D/3D: serial NGP deposition.
func baselineFunc(p benchParams, weights []float64) (string, func() error) {
	if len(p.axes) == 1 {
		spec := p.axes[0]
		xs, ws := sortedInRange(spec, p.coords[0], weights)
		edges := spec.Edges()
		counts := make([]float64, spec.Bins)
		return "gonum stat.Histogram", func() error {
			stat.Histogram(counts, edges, xs, ws)
			return nil
		}
	}

	return "ngp serial", func() error {
		_, e := histogram.HistogramND(p.coords, weights, p.axes, shape.NGP, histogram.WithSerial())
		return e
	}
}

// sortedInRange keeps the samples inside [Low, High) sorted by coordinate,
// as stat.Histogram requires.
func sortedInRange(spec axis.Spec, x, weights []float64) (xs, ws []float64) {
	idx := make([]int, 0, len(x))
	for i, v := range x {
		if v >= spec.Low && v < spec.High {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	xs = make([]float64, len(idx))
	for j, i := range idx {
		xs[j] = x[i]
	}
	if weights != nil {
		ws = make([]float64, len(idx))
		for j, i := range idx {
			ws[j] = weights[i]
		}
	}
	return xs, ws
}

// runBench times the baseline and every order, with and without weights,
// and writes a table to w.
func runBench(w io.Writer, p benchParams) error {
	weightSets := [][]float64{nil, p.weights}
	if p.onlyW {
		weightSets = weightSets[1:]
	}
	if p.weights == nil {
		weightSets = [][]float64{nil}
	}

	var rows []timing
	for _, weights := range weightSets {
		name, base := baselineFunc(p, weights)
		tb, e := measure(p.repeat, base)
		if e != nil {
			return e
		}
		rows = append(rows, timing{label: name, weighted: weights != nil, perCall: tb, baseline: tb})

		for _, o := range p.orders {
			tc, e := measure(p.repeat, func() error {
				_, e := histogram.HistogramND(p.coords, weights, p.axes, o, p.opts...)
				return e
			})
			if e != nil {
				return e
			}
			rows = append(rows, timing{label: o.String(), weighted: weights != nil, perCall: tc, baseline: tb})
			p.logger.Debug("timed",
				zap.Stringer("order", o),
				zap.Bool("weighted", weights != nil),
				zap.Duration("per-call", tc),
			)
		}
	}

	return writeReport(w, p, rows)
}

func writeReport(w io.Writer, p benchParams, rows []timing) error {
	bins := make([]int, len(p.axes))
	for k, s := range p.axes {
		bins[k] = s.Bins
	}
	fmt.Fprintf(w, "=== Histogram %dD bins: %v, npart: %.1e ===\n", len(p.axes), bins, float64(len(p.coords[0])))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "kernel\tweights\tsec/call\tfactor")
	for _, r := range rows {
		ws := "-"
		if r.weighted {
			ws = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2e\t%5.2f\n", r.label, ws, r.perCall.Seconds(), factor(r.baseline, r.perCall))
	}

	return tw.Flush()
}

// factor is how many times faster d is than base.
func factor(base, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return base.Seconds() / d.Seconds()
}

package histogram_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/deposit/histogram"
	"github.com/katalvlaran/deposit/shape"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// allOrders lists every supported kernel.
var allOrders = []shape.Order{shape.NGP, shape.CIC, shape.TSC}

// uniform returns n deterministic samples in [lo, hi).
func uniform(rng *rand.Rand, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*rng.Float64()
	}

	return out
}

// mustResult fails the test on a configuration error.
// Usage: res := mustResult(t)(histogram.Histogram1D(...)).
func mustResult(t testing.TB) func(*histogram.Result, error) *histogram.Result {
	return func(res *histogram.Result, err error) *histogram.Result {
		t.Helper()
		require.NoError(t, err)
		require.NotNil(t, res)

		return res
	}
}

// plainHistogram is the reference single-bin histogram built on gonum
// stat.Histogram: samples outside [edges[0], edges[last]) are discarded,
// the rest sorted together with their weights.
func plainHistogram(edges, x, weights []float64) []float64 {
	type sample struct{ x, w float64 }
	kept := make([]sample, 0, len(x))
	for i, v := range x {
		if v < edges[0] || v >= edges[len(edges)-1] {
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		kept = append(kept, sample{v, w})
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].x < kept[j].x })

	xs := make([]float64, len(kept))
	ws := make([]float64, len(kept))
	for i, s := range kept {
		xs[i], ws[i] = s.x, s.w
	}

	return stat.Histogram(nil, edges, xs, ws)
}

package histogram_test

import (
	"fmt"

	"github.com/katalvlaran/deposit/histogram"
	"github.com/katalvlaran/deposit/shape"
)

// ExampleHistogram1D deposits four samples with each kernel.
func ExampleHistogram1D() {
	x := []float64{0.1, 0.6, 0.6, 0.99}
	for _, o := range []shape.Order{shape.NGP, shape.CIC, shape.TSC} {
		res, err := histogram.Histogram1D(x, nil, 4, 0, 1, o)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s: %.4f total=%.4f\n", o, res.Grid.Data(), res.Total())
	}

	// Output:
	// ngp: [1.0000 0.0000 2.0000 1.0000] total=4.0000
	// cic: [0.6000 0.4000 1.2000 0.8400] total=3.0400
	// tsc: [0.5900 0.4150 1.1800 0.9558] total=3.1408
}

// ExampleHistogram2D shows a CIC sample split along x and sitting exactly on
// a bin boundary along y.
func ExampleHistogram2D() {
	res, err := histogram.Histogram2D([]float64{0.25}, []float64{0.5}, nil,
		[2]int{2, 2}, [2][2]float64{{0, 1}, {0, 1}}, shape.CIC)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Grid)
	fmt.Println(res.Edges[0])

	// Output:
	// [[0, 0.5],
	//  [0, 0.5]]
	// [0 0.5 1]
}

// ExampleParseConfig reads a YAML configuration and runs it.
func ExampleParseConfig() {
	c, err := histogram.ParseConfig([]byte(`
shape: ngp
axes:
  - {bins: 3, low: 0, high: 3}
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := c.Histogram([][]float64{{0.5, 1.5, 1.7, 9}}, []float64{1, 2, 3, 4})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Grid, "dropped:", res.Dropped)

	// Output:
	// [1, 5, 0] dropped: 1
}

// ExampleConfigurationError lists every problem of a rejected call.
func ExampleConfigurationError() {
	_, err := histogram.Histogram1D([]float64{0.5}, []float64{1, 2}, 4, 0, 1, shape.Order(7))
	fmt.Println(err)

	// Output:
	// histogram: Histogram1D: ValidateOrder: Order(7): shape: unsupported shape order; ValidateSamples: 2 weights for 1 samples: histogram: array lengths differ
}

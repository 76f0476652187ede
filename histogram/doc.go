// SPDX-License-Identifier: MIT

// Package histogram computes shape-weighted histograms of samples in 1, 2 and
// 3 dimensions: the particle-to-grid deposition step of particle-in-cell codes.
//
// Every sample is spread over neighbouring bins by a separable kernel of
// order 0 (NGP), 1 (CIC) or 2 (TSC), see package shape. The full kernel is
// the product of one 1D kernel per axis.
//
// Usage:
//
//	res, err := histogram.Histogram1D(x, w, 1000, 0.001, 0.999, shape.CIC)
//	res, err := histogram.Histogram2D(x, y, nil, [2]int{1000, 700},
//		[2][2]float64{{0.01, 0.99}, {0.01, 0.99}}, shape.TSC)
//	res.Grid   // *grid.Dense, row-major, shape = bins
//	res.Edges  // per-axis bin boundaries (bins+1 values)
//
// Policy:
//   - All configuration is validated before any work starts; every violation
//     is reported in one *ConfigurationError (errors.Is(err, ErrConfiguration)).
//   - Individual samples never fail a call. Coordinates outside the range,
//     NaN or ±Inf are dropped on that axis and the sample contributes nothing;
//     Result.Dropped counts such samples.
//   - Kernel pairs falling outside the grid are dropped, not renormalized:
//     samples near the edge deposit less than their weight.
//
// Concurrency:
//   - Large inputs are split into contiguous chunks, each worker fills a
//     private grid and the grids are summed after all workers finish.
//     No locks or atomics touch grid cells. Results are deterministic for a
//     fixed worker count; different worker counts agree up to floating-point
//     summation order.
//
// Configuration can also be read from YAML, see Config.
package histogram

import "github.com/katalvlaran/deposit/internal/logging"

var logger = logging.New("histogram")

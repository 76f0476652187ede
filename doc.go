// Package deposit computes shape-weighted histograms: the particle-to-grid
// deposition step of particle-in-cell codes, for 1, 2 and 3 dimensions.
//
// What is deposit?
//
//	A plain histogram puts every sample into exactly one bin. deposit spreads
//	each sample over its neighbouring bins with a kernel of order
//		• 0 – NGP, nearest grid point (one bin, same as a plain histogram)
//		• 1 – CIC, cloud in cell (two bins per axis, linear weights)
//		• 2 – TSC, triangular shaped cloud (three bins per axis, quadratic weights)
//	Multidimensional kernels are the product of one 1D kernel per axis.
//
// Everything is organized under four packages:
//
//	shape/       kernel orders and their per-axis weights
//	axis/        axis specs (bins, low, high), bin edges, coordinate → (bin, weight) pairs
//	grid/        N-dimensional row-major float64 grid and the separable accumulator
//	histogram/   Histogram1D/2D/3D/ND entry points, validation, options, YAML config
//
// Quick example:
//
//	res, err := histogram.Histogram1D([]float64{0.1, 0.6, 0.6, 0.99}, nil,
//		4, 0, 1, shape.CIC)
//	// res.Grid  → [0.6, 0.4, 1.2, 0.84]
//	// res.Edges → [[0 0.25 0.5 0.75 1]]
//
// Samples near the range boundaries lose the part of their kernel that falls
// outside the grid; nothing is renormalized. Large inputs are split over
// worker goroutines with private grids summed at the end.
//
// cmd/histbench times all kernels against a plain histogram:
//
//	go run github.com/katalvlaran/deposit/cmd/histbench --dims 3
package deposit

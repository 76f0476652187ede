// SPDX-License-Identifier: MIT

// Package grid provides the dense N-dimensional accumulation grid and the
// separable deposition loop that writes sample contributions into it.
//
// Storage:
//   - Dense keeps one flat []float64 in row-major order: the last axis
//     varies fastest and offset = Σ idx[k]·stride[k].
//   - Public indexers (At/Set/Offset) return ErrOutOfRange instead of
//     panicking; the deposition loop writes the flat slice directly.
//
// Deposition:
//   - Accumulator.Deposit takes one axis.Contribution per dimension and adds
//     the outer product of their weights, scaled by the sample weight, to
//     the grid. One routine serves every dimensionality.
//   - Cells are visited in a fixed order (last axis fastest), so a single
//     sample is always summed the same way.
//
// Reduction:
//   - AddGrid adds another grid of the same shape element-wise; it is the
//     join step of per-worker private grids.
//
// Complexity quicksheet:
//   - New: O(cells) zero-init; At/Set/Offset: O(D); Deposit: O(support^D);
//     AddGrid/Sum/Clone: O(cells).
package grid

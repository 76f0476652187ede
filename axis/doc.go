// SPDX-License-Identifier: MIT

// Package axis maps continuous coordinates on one axis to the grid bins a
// sample's shape function touches.
//
// An axis is described by Spec{Bins, Low, High}. A Binner combines a Spec
// with a shape.Order and turns a coordinate x into a Contribution: up to
// three (bin index, weight) pairs, clipped to [0, Bins).
//
// Boundary policy:
//   - Pairs whose index falls outside [0, Bins) are dropped and the remaining
//     weights are NOT renormalized. A sample straddling the edge of the range
//     deposits less than its full weight; pad the range when total weight
//     must be conserved.
//   - NaN and ±Inf coordinates produce an empty Contribution.
//
// Grid convention: bin i spans [Low+i·w, Low+(i+1)·w) with w = (High-Low)/Bins.
// NGP deposits into the bin containing x. CIC splits between floor(p) and
// floor(p)+1 where p = (x-Low)/w. TSC centers on round(p).
package axis

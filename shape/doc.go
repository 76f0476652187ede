// SPDX-License-Identifier: MIT

// Package shape evaluates particle deposition kernels ("shape functions")
// of order 0, 1 and 2 on a regular grid.
//
// A kernel splits one unit of weight among the grid points its support
// touches, given the fractional offset between the sample and its base grid
// point:
//
//	order | name | support | relative offsets | weights
//	------+------+---------+------------------+--------------------------------------------
//	  0   | NGP  |    1    | 0                | 1
//	  1   | CIC  |    2    | 0, +1            | 1-u, u                        (u  ∈ [0,1))
//	  2   | TSC  |    3    | -1, 0, +1        | ½(½-u)², ¾-u², ½(½+u)²        (u  ∈ [-½,½))
//
// Weights of an unclipped kernel always sum to 1. The package knows nothing
// about grid boundaries; clipping is done by package axis.
package shape

// SPDX-License-Identifier: MIT

package grid

import "gonum.org/v1/gonum/mat"

// Matrix exposes a 2D grid as a gonum matrix with rows along axis 0.
// The matrix shares storage with the grid: writes through either are
// visible in both.
// Errors: ErrNotMatrix if the grid is not two-dimensional.
func (g *Dense) Matrix() (*mat.Dense, error) {
	if len(g.shape) != 2 {
		return nil, denseErrorf(ctxMatrix, g.shape, ErrNotMatrix)
	}

	return mat.NewDense(g.shape[0], g.shape[1], g.data), nil
}

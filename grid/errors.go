// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with a
// call-site tag); match them with errors.Is.

package grid

import "errors"

var (
	// ErrBadShape is returned when a grid has no axes or a non-positive extent.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrTooLarge is returned when the cell count does not fit into an int.
	ErrTooLarge = errors.New("grid: too many cells")

	// ErrOutOfRange indicates an index outside the grid, or the wrong number of indices.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch indicates two grids (or a grid and its inputs) disagree in shape.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNotMatrix is returned when a non-2D grid is exported as a matrix.
	ErrNotMatrix = errors.New("grid: grid is not two-dimensional")
)

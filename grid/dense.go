// SPDX-License-Identifier: MIT

// Package grid - Dense storage (row-major, N axes) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with the explicit index formula Σ idx[k]·stride[k].
//   - Guarantee safety at the public surface: At/Set/Offset return errors instead of panicking.
//   - Keep determinism: fixed loop orders, no map iteration.

package grid

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxOffset  = "Offset"
	ctxAddGrid = "AddGrid"
	ctxMatrix  = "Matrix"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// denseErrorf wraps a sentinel with the method tag and the offending indices.
func denseErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}

// Dense is a zero-initialized N-dimensional grid of float64 accumulators.
//   - shape holds the extent of every axis (all > 0).
//   - strides[k] is the flat distance between neighbours along axis k.
//   - data has length Π shape in row-major order (last axis fastest).
type Dense struct {
	shape   []int
	strides []int
	data    []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// New creates a zero grid with the given extents.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate len(shape) > 0 and every extent > 0.
//   - Stage 2: compute strides right-to-left, guarding against int overflow.
//   - Stage 3: allocate one zero-filled buffer.
//
// Errors:
//   - ErrBadShape (no axes or extent <= 0), ErrTooLarge (cell count overflows int).
//
// Complexity:
//   - Time O(cells), Space O(cells).
func New(shape ...int) (*Dense, error) {
	if len(shape) == 0 {
		return nil, denseErrorf(ctxNew, shape, ErrBadShape)
	}
	for _, n := range shape {
		if n <= 0 {
			return nil, denseErrorf(ctxNew, shape, ErrBadShape)
		}
	}

	strides := make([]int, len(shape))
	cells := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = cells
		if cells > math.MaxInt/shape[k] {
			return nil, denseErrorf(ctxNew, shape, ErrTooLarge)
		}
		cells *= shape[k]
	}

	return &Dense{
		shape:   append([]int(nil), shape...),
		strides: strides,
		data:    make([]float64, cells),
	}, nil
}

// Shape returns a copy of the per-axis extents.
func (g *Dense) Shape() []int { return append([]int(nil), g.shape...) }

// Dims returns the number of axes.
func (g *Dense) Dims() int { return len(g.shape) }

// Len returns the number of cells.
func (g *Dense) Len() int { return len(g.data) }

// Strides returns a copy of the per-axis strides of the flat buffer.
func (g *Dense) Strides() []int { return append([]int(nil), g.strides...) }

// Data returns the backing row-major buffer. Writes are visible in the grid.
func (g *Dense) Data() []float64 { return g.data }

// Offset returns the flat offset of the cell at idx.
// Errors: ErrOutOfRange when len(idx) != Dims() or any index is outside its axis.
func (g *Dense) Offset(idx ...int) (int, error) {
	off, ok := g.offset(idx)
	if !ok {
		return 0, denseErrorf(ctxOffset, idx, ErrOutOfRange)
	}

	return off, nil
}

// offset reports false for a wrong arity or an index outside its axis.
func (g *Dense) offset(idx []int) (int, bool) {
	if len(idx) != len(g.shape) {
		return 0, false
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= g.shape[k] {
			return 0, false
		}
		off += i * g.strides[k]
	}

	return off, true
}

// At returns the value of the cell at idx.
func (g *Dense) At(idx ...int) (float64, error) {
	off, ok := g.offset(idx)
	if !ok {
		return 0, denseErrorf(ctxAt, idx, ErrOutOfRange)
	}

	return g.data[off], nil
}

// Set overwrites the cell at idx with v.
func (g *Dense) Set(v float64, idx ...int) error {
	off, ok := g.offset(idx)
	if !ok {
		return denseErrorf(ctxSet, idx, ErrOutOfRange)
	}
	g.data[off] = v

	return nil
}

// Clone returns a deep copy with independent storage.
func (g *Dense) Clone() *Dense {
	cp := make([]float64, len(g.data))
	copy(cp, g.data)

	return &Dense{
		shape:   append([]int(nil), g.shape...),
		strides: append([]int(nil), g.strides...),
		data:    cp,
	}
}

// ZerosLike returns a new zero grid with the same shape as g.
// Handy to preallocate per-worker accumulation buffers.
func (g *Dense) ZerosLike() *Dense {
	return &Dense{
		shape:   append([]int(nil), g.shape...),
		strides: append([]int(nil), g.strides...),
		data:    make([]float64, len(g.data)),
	}
}

// Reset zeroes every cell, keeping the allocation.
func (g *Dense) Reset() {
	clear(g.data)
}

// Sum returns the total of all cells.
func (g *Dense) Sum() float64 {
	return floats.Sum(g.data)
}

// SameShape reports whether g and other have identical extents.
func (g *Dense) SameShape(other *Dense) bool {
	if other == nil || len(g.shape) != len(other.shape) {
		return false
	}
	for k := range g.shape {
		if g.shape[k] != other.shape[k] {
			return false
		}
	}

	return true
}

// AddGrid adds other into g cell by cell.
// Errors: ErrDimensionMismatch if the shapes differ.
// Complexity: O(cells).
func (g *Dense) AddGrid(other *Dense) error {
	if !g.SameShape(other) {
		return denseErrorf(ctxAddGrid, g.shape, ErrDimensionMismatch)
	}
	floats.Add(g.data, other.data)

	return nil
}

// EqualApprox reports whether g and other have the same shape and every
// pair of cells is within tol (absolute or relative, as in gonum floats).
func (g *Dense) EqualApprox(other *Dense, tol float64) bool {
	return g.SameShape(other) && floats.EqualApprox(g.data, other.data, tol)
}

// String renders the grid as nested brackets, one innermost row per line.
// Intended for diagnostics, not hot paths.
func (g *Dense) String() string {
	var b strings.Builder
	g.writeAxis(&b, 0, 0)

	return b.String()
}

func (g *Dense) writeAxis(b *strings.Builder, k, base int) {
	b.WriteString(_fmtOpen)
	last := k == len(g.shape)-1
	for i := 0; i < g.shape[k]; i++ {
		if i > 0 {
			if last {
				b.WriteString(_fmtSep)
			} else {
				b.WriteString(",\n")
				b.WriteString(strings.Repeat(" ", k+1))
			}
		}
		off := base + i*g.strides[k]
		if last {
			fmt.Fprintf(b, "%g", g.data[off])
		} else {
			g.writeAxis(b, k+1, off)
		}
	}
	b.WriteString(_fmtClose)
}

// Package grid_test contains unit tests for the Dense grid.
package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/deposit/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGrid creates a grid or fails the test.
func mustGrid(t testing.TB, shape ...int) *grid.Dense {
	t.Helper()
	g, err := grid.New(shape...)
	require.NoError(t, err)

	return g
}

// TestNewInvalidShape ensures New rejects empty and non-positive shapes.
func TestNewInvalidShape(t *testing.T) {
	// no axes at all
	_, err := grid.New()
	require.ErrorIs(t, err, grid.ErrBadShape)

	// zero and negative extents
	_, err = grid.New(3, 0)
	require.ErrorIs(t, err, grid.ErrBadShape)
	_, err = grid.New(-1)
	require.ErrorIs(t, err, grid.ErrBadShape)

	// cell count overflows int
	_, err = grid.New(math.MaxInt/2, 3)
	require.ErrorIs(t, err, grid.ErrTooLarge)
}

// TestShapeStrides verifies the row-major layout.
func TestShapeStrides(t *testing.T) {
	g := mustGrid(t, 2, 3, 4)

	assert.Equal(t, []int{2, 3, 4}, g.Shape())
	assert.Equal(t, []int{12, 4, 1}, g.Strides())
	assert.Equal(t, 3, g.Dims())
	assert.Equal(t, 24, g.Len())
	assert.Len(t, g.Data(), 24)

	// Shape returns a copy.
	s := g.Shape()
	s[0] = 99
	assert.Equal(t, 2, g.Shape()[0])
}

// TestOffsetAtSet validates index translation and bounds errors.
func TestOffsetAtSet(t *testing.T) {
	g := mustGrid(t, 2, 3)

	off, err := g.Offset(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, off)

	require.NoError(t, g.Set(7.5, 1, 2))
	v, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)
	assert.Equal(t, 7.5, g.Data()[5])

	_, err = g.At(2, 0) // row out of range
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.At(0, -1) // negative column
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.At(0) // wrong arity
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	assert.ErrorIs(t, g.Set(1, 0, 3), grid.ErrOutOfRange)
}

// TestIndexErrorsNameOneMethod checks that each accessor tags its error once.
func TestIndexErrorsNameOneMethod(t *testing.T) {
	g := mustGrid(t, 2, 3)

	_, err := g.At(2, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	assert.Equal(t, "Dense.At([2 0]): grid: index out of range", err.Error())

	err = g.Set(1, 0, 3)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	assert.Equal(t, "Dense.Set([0 3]): grid: index out of range", err.Error())

	_, err = g.Offset(1)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	assert.Equal(t, "Dense.Offset([1]): grid: index out of range", err.Error())
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	g := mustGrid(t, 2, 2)
	require.NoError(t, g.Set(1, 0, 0))

	c := g.Clone()
	require.NoError(t, c.Set(3, 0, 0))

	v, _ := g.At(0, 0)
	assert.Equal(t, 1.0, v)
	v, _ = c.At(0, 0)
	assert.Equal(t, 3.0, v)
	assert.True(t, g.SameShape(c))

	z := g.ZerosLike()
	assert.True(t, g.SameShape(z))
	assert.Equal(t, 0.0, z.Sum())
}

// TestAddGridSumReset covers the reduction helpers.
func TestAddGridSumReset(t *testing.T) {
	a := mustGrid(t, 3)
	b := mustGrid(t, 3)
	copy(a.Data(), []float64{1, 2, 3})
	copy(b.Data(), []float64{10, 20, 30})

	require.NoError(t, a.AddGrid(b))
	assert.Equal(t, []float64{11, 22, 33}, a.Data())
	assert.Equal(t, 66.0, a.Sum())

	assert.ErrorIs(t, a.AddGrid(mustGrid(t, 4)), grid.ErrDimensionMismatch)
	assert.ErrorIs(t, a.AddGrid(mustGrid(t, 3, 1)), grid.ErrDimensionMismatch)
	assert.ErrorIs(t, a.AddGrid(nil), grid.ErrDimensionMismatch)

	a.Reset()
	assert.Equal(t, 0.0, a.Sum())
	assert.Len(t, a.Data(), 3)
}

// TestEqualApprox compares grids within a tolerance.
func TestEqualApprox(t *testing.T) {
	a := mustGrid(t, 2)
	b := mustGrid(t, 2)
	copy(a.Data(), []float64{1, 2})
	copy(b.Data(), []float64{1 + 1e-13, 2})

	assert.True(t, a.EqualApprox(b, 1e-12))
	assert.False(t, a.EqualApprox(b, 1e-15))
	assert.False(t, a.EqualApprox(mustGrid(t, 1, 2), 1))
}

// TestString renders 1D and 2D grids.
func TestString(t *testing.T) {
	g := mustGrid(t, 3)
	copy(g.Data(), []float64{1, 0.5, 2})
	assert.Equal(t, "[1, 0.5, 2]", g.String())

	m := mustGrid(t, 2, 2)
	copy(m.Data(), []float64{1, 2, 3, 4})
	assert.Equal(t, "[[1, 2],\n [3, 4]]", m.String())
}

// TestMatrix exports a 2D grid as a gonum matrix sharing storage.
func TestMatrix(t *testing.T) {
	g := mustGrid(t, 2, 3)
	require.NoError(t, g.Set(4, 1, 2))

	m, err := g.Matrix()
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 4.0, m.At(1, 2))

	m.Set(0, 1, 9)
	v, _ := g.At(0, 1)
	assert.Equal(t, 9.0, v)

	_, err = mustGrid(t, 2, 2, 2).Matrix()
	assert.ErrorIs(t, err, grid.ErrNotMatrix)
}

// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/deposit/axis"
)

// MaxDims is the highest dimensionality an Accumulator handles.
const MaxDims = 3

// Accumulator adds separable sample contributions into a Dense grid.
// It holds no per-sample state; one Accumulator must not be used from
// several goroutines at once because it writes the grid without locking.
type Accumulator struct {
	g       *Dense
	strides []int
	data    []float64
}

// NewAccumulator returns an Accumulator writing into g.
// Errors: ErrBadShape if g is nil or has more than MaxDims axes.
func NewAccumulator(g *Dense) (*Accumulator, error) {
	if g == nil || g.Dims() > MaxDims {
		return nil, fmt.Errorf("NewAccumulator: %w", ErrBadShape)
	}

	return &Accumulator{g: g, strides: g.strides, data: g.data}, nil
}

// Grid returns the grid being written.
func (a *Accumulator) Grid() *Dense { return a.g }

// Deposit adds weight × Π parts[k].Weight[j_k] to the cell (parts[0].Index[j_0], …)
// for every combination of one pair per axis.
//
// Behavior highlights:
//   - If any axis contribution is empty the sample is skipped entirely and
//     Deposit returns false.
//   - Combinations are visited like an odometer, last axis fastest, and the
//     product is always formed as weight·w0·w1·…, so the arithmetic for one
//     sample is fixed.
//   - Indices are trusted (axis.Binner clips them); len(parts) must equal
//     the grid dimensionality, otherwise Deposit panics.
//
// Complexity: O(Π parts[k].N) ≤ O(3^D).
func (a *Accumulator) Deposit(weight float64, parts []axis.Contribution) bool {
	d := len(a.strides)
	if len(parts) != d {
		panic(fmt.Sprintf("grid: Deposit with %d contributions on a %d-D grid", len(parts), d))
	}
	for k := 0; k < d; k++ {
		if parts[k].N == 0 {
			return false
		}
	}

	var pos [MaxDims]int
	data, strides := a.data, a.strides
	for {
		off, w := 0, weight
		for k := 0; k < d; k++ {
			c := &parts[k]
			off += c.Index[pos[k]] * strides[k]
			w *= c.Weight[pos[k]]
		}
		data[off] += w

		// advance the odometer
		k := d - 1
		for ; k >= 0; k-- {
			pos[k]++
			if pos[k] < parts[k].N {
				break
			}
			pos[k] = 0
		}
		if k < 0 {
			return true
		}
	}
}

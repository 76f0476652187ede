// SPDX-License-Identifier: MIT

package shape

import "fmt"

// Order selects the deposition kernel.
type Order int

const (
	// NGP (nearest grid point) puts the whole weight into one bin.
	NGP Order = 0
	// CIC (cloud in cell) splits the weight linearly between two bins.
	CIC Order = 1
	// TSC (triangular shaped cloud) spreads the weight over three bins
	// with the quadratic B-spline.
	TSC Order = 2
)

// MaxSupport is the widest support of any supported kernel (TSC).
const MaxSupport = 3

// Valid reports whether o is one of NGP, CIC or TSC.
func (o Order) Valid() bool {
	return o >= NGP && o <= TSC
}

// Support returns the number of grid points the kernel touches,
// or 0 for an unsupported order.
func (o Order) Support() int {
	if !o.Valid() {
		return 0
	}

	return int(o) + 1
}

// String returns the conventional short name of the kernel.
func (o Order) String() string {
	switch o {
	case NGP:
		return "ngp"
	case CIC:
		return "cic"
	case TSC:
		return "tsc"
	}

	return fmt.Sprintf("Order(%d)", int(o))
}

// Pair is one (relative offset, weight) entry of an evaluated kernel.
type Pair struct {
	Offset int
	Weight float64
}

// Kernel is an evaluated shape function.
// W[k] belongs to the grid point First+k relative to the base point, for k < N.
// The value is fixed-size so it stays on the stack in the deposition loop.
type Kernel struct {
	First int
	N     int
	W     [MaxSupport]float64
}

// Pairs returns the kernel as an ordered list of (offset, weight) pairs.
func (k Kernel) Pairs() []Pair {
	out := make([]Pair, k.N)
	for i := 0; i < k.N; i++ {
		out[i] = Pair{Offset: k.First + i, Weight: k.W[i]}
	}

	return out
}

// Sum returns the total weight carried by the kernel.
func (k Kernel) Sum() float64 {
	s := 0.0
	for i := 0; i < k.N; i++ {
		s += k.W[i]
	}

	return s
}

// Evaluate returns the kernel of order o for the fractional offset u.
//
// For NGP u is ignored. For CIC u is the offset from the base point
// (floor of the normalized position), u ∈ [0,1). For TSC u is the signed
// offset from the nearest grid point, u ∈ [-0.5,0.5).
// An unsupported order yields an empty kernel (N == 0).
func Evaluate(o Order, u float64) Kernel {
	switch o {
	case NGP:
		return Kernel{First: 0, N: 1, W: [MaxSupport]float64{1}}
	case CIC:
		return Kernel{First: 0, N: 2, W: [MaxSupport]float64{1 - u, u}}
	case TSC:
		l, r := 0.5-u, 0.5+u
		return Kernel{First: -1, N: 3, W: [MaxSupport]float64{0.5 * l * l, 0.75 - u*u, 0.5 * r * r}}
	}

	return Kernel{}
}

// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/deposit/shape"
)

// Contribution is the clipped deposit of one sample on one axis:
// Weight[k] goes to bin Index[k] for k < N, in ascending bin order.
// N == 0 means the sample misses the axis entirely.
type Contribution struct {
	Index  [shape.MaxSupport]int
	Weight [shape.MaxSupport]float64
	N      int
}

// Empty reports whether no bin is touched.
func (c Contribution) Empty() bool { return c.N == 0 }

// Sum returns the weight that survived clipping.
func (c Contribution) Sum() float64 {
	s := 0.0
	for k := 0; k < c.N; k++ {
		s += c.Weight[k]
	}

	return s
}

// Binner maps coordinates on one axis to clipped kernel contributions.
// A Binner is immutable and safe for concurrent use.
type Binner struct {
	spec  Spec
	order shape.Order
	bins  int
	low   float64
	high  float64
	width float64

	// Accepted window of the normalized position p, [minP, maxP).
	// Outside of it every pair of the kernel would be clipped.
	minP, maxP float64
}

// NewBinner validates s and o and returns a Binner for them.
func NewBinner(s Spec, o shape.Order) (*Binner, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !o.Valid() {
		return nil, fmt.Errorf("NewBinner(%v): %w", o, shape.ErrUnsupportedOrder)
	}

	b := &Binner{
		spec:  s,
		order: o,
		bins:  s.Bins,
		low:   s.Low,
		high:  s.High,
		width: s.Width(),
	}
	switch o {
	case shape.NGP:
		b.minP, b.maxP = 0, float64(s.Bins)
	case shape.CIC:
		b.minP, b.maxP = -1, float64(s.Bins)
	case shape.TSC:
		b.minP, b.maxP = -1.5, float64(s.Bins)+0.5
	}

	return b, nil
}

// Spec returns the axis specification.
func (b *Binner) Spec() Spec { return b.spec }

// Order returns the shape order.
func (b *Binner) Order() shape.Order { return b.order }

// Position returns the normalized position (x-Low)/width of x.
func (b *Binner) Position(x float64) float64 {
	return (x - b.low) / b.width
}

// Bin returns the clipped contribution of a sample at x.
// NaN and ±Inf map to an empty contribution.
func (b *Binner) Bin(x float64) Contribution {
	var c Contribution
	p := (x - b.low) / b.width

	if b.order == shape.NGP {
		// Test x itself so a coordinate just below High whose p rounds up
		// to Bins still lands in the last bin.
		if !(x >= b.low && x < b.high) {
			return c
		}
		i := int(p)
		if i >= b.bins {
			i = b.bins - 1
		}
		c.Index[0], c.Weight[0], c.N = i, 1, 1

		return c
	}

	// Comparisons fail for NaN, so it is rejected here too.
	if !(p >= b.minP && p < b.maxP) {
		return c
	}

	var base float64
	if b.order == shape.CIC {
		base = math.Floor(p)
	} else {
		base = math.Floor(p + 0.5)
	}
	k := shape.Evaluate(b.order, p-base)
	first := int(base) + k.First
	for j := 0; j < k.N; j++ {
		idx := first + j
		if idx < 0 || idx >= b.bins {
			continue
		}
		c.Index[c.N] = idx
		c.Weight[c.N] = k.W[j]
		c.N++
	}

	return c
}

// SPDX-License-Identifier: MIT

package axis

import "errors"

var (
	// ErrInvalidBins is returned when the bin count is not positive.
	ErrInvalidBins = errors.New("axis: bin count must be > 0")

	// ErrInvalidRange is returned when low >= high, a bound is NaN/±Inf,
	// or the resulting bin width is not a positive finite number.
	ErrInvalidRange = errors.New("axis: range must satisfy low < high with finite bounds")
)

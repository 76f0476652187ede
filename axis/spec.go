// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"
)

// Spec describes one histogram axis: Bins equal-width bins covering [Low, High).
type Spec struct {
	Bins int     `yaml:"bins"`
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// Validate checks Bins > 0 and a finite Low < High with a positive, finite
// bin width. Every violated rule is reported.
func (s Spec) Validate() (err error) {
	if s.Bins <= 0 {
		err = multierr.Append(err, fmt.Errorf("%v: %w", s, ErrInvalidBins))
	}
	if !isFinite(s.Low) || !isFinite(s.High) || !(s.Low < s.High) {
		return multierr.Append(err, fmt.Errorf("%v: %w", s, ErrInvalidRange))
	}
	if s.Bins > 0 {
		if w := s.Width(); !(w > 0) || !isFinite(w) {
			err = multierr.Append(err, fmt.Errorf("%v: bin width %g: %w", s, w, ErrInvalidRange))
		}
	}

	return err
}

// Width returns the bin width (High-Low)/Bins.
// The result is meaningless for an invalid Spec.
func (s Spec) Width() float64 {
	return (s.High - s.Low) / float64(s.Bins)
}

// Edges returns the Bins+1 bin boundaries from Low to High inclusive.
// Returns nil for an invalid Spec.
func (s Spec) Edges() []float64 {
	if s.Validate() != nil {
		return nil
	}
	edges := floats.Span(make([]float64, s.Bins+1), s.Low, s.High)
	edges[s.Bins] = s.High // pin the last edge against rounding

	return edges
}

// Centers returns the midpoint of every bin.
// Returns nil for an invalid Spec.
func (s Spec) Centers() []float64 {
	edges := s.Edges()
	if edges == nil {
		return nil
	}
	centers := make([]float64, s.Bins)
	for i := range centers {
		centers[i] = 0.5 * (edges[i] + edges[i+1])
	}

	return centers
}

// String renders the spec as bins[low,high).
func (s Spec) String() string {
	return fmt.Sprintf("%d[%g,%g)", s.Bins, s.Low, s.High)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

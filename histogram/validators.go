// SPDX-License-Identifier: MIT
// Package: histogram
//
// Purpose:
//  - Provide a single, canonical source of truth for call validation.
//  - Collect every violation (multierr) so one failed call reports all problems.
//  - Run before any allocation: a rejected call never produces a grid.

package histogram

import (
	"fmt"

	"github.com/katalvlaran/deposit/axis"
	"github.com/katalvlaran/deposit/grid"
	"github.com/katalvlaran/deposit/shape"
	"go.uber.org/multierr"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateAxes checks the dimensionality (1..3) and every axis Spec.
func ValidateAxes(axes []axis.Spec) (err error) {
	if len(axes) == 0 || len(axes) > grid.MaxDims {
		err = multierr.Append(err, validatorErrorf(fmt.Sprintf("ValidateAxes: %d axes", len(axes)), ErrDimensions))
	}
	for k, s := range axes {
		if e := s.Validate(); e != nil {
			err = multierr.Append(err, validatorErrorf(fmt.Sprintf("ValidateAxes: axis %d", k), e))
		}
	}

	return err
}

// ValidateOrder checks that o is NGP, CIC or TSC.
func ValidateOrder(o shape.Order) error {
	if !o.Valid() {
		return validatorErrorf(fmt.Sprintf("ValidateOrder: %v", o), ErrUnsupportedOrder)
	}

	return nil
}

// ValidateSamples checks one coordinate array per axis, equal lengths across
// axes, and (when weights != nil) a weight per sample.
func ValidateSamples(coords [][]float64, weights []float64, dims int) (err error) {
	if len(coords) != dims {
		return validatorErrorf(fmt.Sprintf("ValidateSamples: %d coordinate arrays for %d axes", len(coords), dims), ErrDimensions)
	}
	if dims == 0 {
		return nil
	}
	n := len(coords[0])
	for k := 1; k < len(coords); k++ {
		if len(coords[k]) != n {
			err = multierr.Append(err, validatorErrorf(
				fmt.Sprintf("ValidateSamples: axis %d has %d samples, axis 0 has %d", k, len(coords[k]), n), ErrLengthMismatch))
		}
	}
	if weights != nil && len(weights) != n {
		err = multierr.Append(err, validatorErrorf(
			fmt.Sprintf("ValidateSamples: %d weights for %d samples", len(weights), n), ErrLengthMismatch))
	}

	return err
}

// validateCall runs every validator and wraps the violations for op.
func validateCall(op string, coords [][]float64, weights []float64, axes []axis.Spec, order shape.Order) error {
	err := multierr.Combine(
		ValidateAxes(axes),
		ValidateOrder(order),
		ValidateSamples(coords, weights, len(axes)),
	)
	if err != nil {
		return &ConfigurationError{Op: op, Err: err}
	}

	return nil
}

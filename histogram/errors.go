// SPDX-License-Identifier: MIT
// Package histogram: sentinel error set.
// Every configuration failure is returned as *ConfigurationError, which
// matches ErrConfiguration and each specific cause via errors.Is.

package histogram

import (
	"errors"

	"github.com/katalvlaran/deposit/axis"
	"github.com/katalvlaran/deposit/shape"
)

var (
	// ErrConfiguration is the umbrella for every rejected call.
	ErrConfiguration = errors.New("histogram: invalid configuration")

	// ErrDimensions indicates a dimensionality other than 1, 2 or 3, or a
	// number of coordinate arrays that differs from the number of axes.
	ErrDimensions = errors.New("histogram: dimensionality must be 1, 2 or 3")

	// ErrLengthMismatch indicates coordinate or weight arrays of different lengths.
	ErrLengthMismatch = errors.New("histogram: array lengths differ")

	// ErrInvalidOption indicates a negative worker count or threshold in a Config.
	ErrInvalidOption = errors.New("histogram: invalid option value")

	// ErrMissingShape indicates a YAML configuration without a shape key.
	ErrMissingShape = errors.New("histogram: shape order not set")
)

// Causes re-exported from the packages that detect them.
var (
	ErrInvalidBins      = axis.ErrInvalidBins
	ErrInvalidRange     = axis.ErrInvalidRange
	ErrUnsupportedOrder = shape.ErrUnsupportedOrder
)

// ConfigurationError reports a call rejected before any processing.
// Err holds every violation found (combined with multierr).
type ConfigurationError struct {
	Op  string
	Err error
}

func (e *ConfigurationError) Error() string {
	return "histogram: " + e.Op + ": " + e.Err.Error()
}

// Unwrap exposes both ErrConfiguration and the underlying causes to errors.Is.
func (e *ConfigurationError) Unwrap() []error {
	return []error{ErrConfiguration, e.Err}
}

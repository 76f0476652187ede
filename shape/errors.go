// SPDX-License-Identifier: MIT

package shape

import "errors"

var (
	// ErrUnsupportedOrder is returned when a shape order outside {0,1,2} is
	// requested or an order name cannot be parsed.
	ErrUnsupportedOrder = errors.New("shape: unsupported shape order")
)

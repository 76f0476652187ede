// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// orderNames maps every accepted spelling to its order.
var orderNames = map[string]Order{
	"0": NGP, "ngp": NGP, "nearest": NGP,
	"1": CIC, "cic": CIC, "linear": CIC,
	"2": TSC, "tsc": TSC, "quadratic": TSC,
}

// ParseOrder parses an order given as a number or a kernel name
// (case-insensitive): 0/ngp/nearest, 1/cic/linear, 2/tsc/quadratic.
func ParseOrder(s string) (Order, error) {
	o, ok := orderNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("ParseOrder(%q): %w", s, ErrUnsupportedOrder)
	}

	return o, nil
}

// UnmarshalYAML accepts any spelling understood by ParseOrder.
func (o *Order) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("shape order at line %d: %w", value.Line, ErrUnsupportedOrder)
	}
	parsed, err := ParseOrder(value.Value)
	if err != nil {
		return err
	}
	*o = parsed

	return nil
}

// MarshalYAML writes the short kernel name.
func (o Order) MarshalYAML() (interface{}, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("MarshalYAML(%d): %w", int(o), ErrUnsupportedOrder)
	}

	return o.String(), nil
}

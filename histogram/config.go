// SPDX-License-Identifier: MIT

package histogram

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/deposit/axis"
	"github.com/katalvlaran/deposit/shape"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const opConfig = "Config"

// Config is a declarative histogram configuration, typically read from YAML:
//
//	shape: cic              # required: 0/1/2 or ngp/cic/tsc
//	workers: 4              # optional, default GOMAXPROCS
//	parallel_threshold: 0   # optional, default DefaultParallelThreshold
//	axes:
//	  - {bins: 1000, low: 0.001, high: 0.999}
type Config struct {
	Axes              []axis.Spec `yaml:"axes"`
	Shape             shape.Order `yaml:"shape"`
	Workers           int         `yaml:"workers,omitempty"`
	ParallelThreshold *int        `yaml:"parallel_threshold,omitempty"`
}

// ParseConfig decodes a YAML document and validates it.
// Unknown keys are rejected and the shape key is required, so typos and
// omissions do not silently fall back to NGP.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigurationError{Op: opConfig, Err: err}
	}

	err := c.validate()
	if !hasShapeKey(data) {
		err = multierr.Append(err, validatorErrorf("shape", ErrMissingShape))
	}
	if err != nil {
		return nil, &ConfigurationError{Op: opConfig, Err: err}
	}

	return &c, nil
}

// hasShapeKey reports whether the document sets shape to a non-null value.
func hasShapeKey(data []byte) bool {
	var doc struct {
		Shape *yaml.Node `yaml:"shape"`
	}
	if yaml.Unmarshal(data, &doc) != nil || doc.Shape == nil {
		return false
	}

	return doc.Shape.ShortTag() != "!!null"
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("histogram: LoadConfig: %w", err)
	}

	return ParseConfig(data)
}

// Validate checks axes, shape order and option values.
// A Config built in code keeps the zero Shape, NGP.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return &ConfigurationError{Op: opConfig, Err: err}
	}

	return nil
}

func (c *Config) validate() error {
	err := multierr.Combine(ValidateAxes(c.Axes), ValidateOrder(c.Shape))
	if c.Workers < 0 {
		err = multierr.Append(err, validatorErrorf(fmt.Sprintf("workers %d", c.Workers), ErrInvalidOption))
	}
	if c.ParallelThreshold != nil && *c.ParallelThreshold < 0 {
		err = multierr.Append(err, validatorErrorf(fmt.Sprintf("parallel_threshold %d", *c.ParallelThreshold), ErrInvalidOption))
	}

	return err
}

// Options converts the execution settings into functional options.
// Zero or absent values keep the defaults.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}
	if c.ParallelThreshold != nil && *c.ParallelThreshold >= 0 {
		opts = append(opts, WithParallelThreshold(*c.ParallelThreshold))
	}

	return opts
}

// Histogram runs HistogramND with the configured axes, order and options.
// Extra opts are applied after the configured ones.
func (c *Config) Histogram(coords [][]float64, weights []float64, opts ...Option) (*Result, error) {
	all := append(c.Options(), opts...)

	return run(opHistogramND, coords, weights, c.Axes, c.Shape, all)
}

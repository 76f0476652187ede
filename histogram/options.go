// SPDX-License-Identifier: MIT

// Package histogram: functional configuration of the execution policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Options never change results beyond floating-point summation order;
//     they only control how the work is scheduled and reported.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package histogram

import (
	"runtime"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the minimum sample count to go parallel.
	// Below it, goroutine start-up and grid reduction cost more than they save.
	DefaultParallelThreshold = 1 << 16

	// DefaultMaxReductionCells caps the cells held by extra worker grids
	// (workers-1 private grids) for one call: 1<<26 cells = 512 MiB.
	// Workers are reduced until the cap holds; large grids run serially.
	DefaultMaxReductionCells = 1 << 26
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "histogram: WithWorkers: n must be >= 1"
	panicThresholdInvalid = "histogram: WithParallelThreshold: n must be >= 0"
	panicCellsInvalid     = "histogram: WithMaxReductionCells: n must be >= 0"
	panicLoggerNil        = "histogram: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers           int         // runtime.GOMAXPROCS(0)
	parallelThreshold int         // DefaultParallelThreshold
	maxReductionCells int         // DefaultMaxReductionCells
	logger            *zap.Logger // package logger
}

// WithWorkers sets the maximum number of goroutines used for one call.
// n == 1 forces serial execution.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSerial is shorthand for WithWorkers(1).
func WithSerial() Option { return WithWorkers(1) }

// WithParallelThreshold sets the minimum number of samples for parallel
// execution. n == 0 makes every non-empty call eligible.
// Panics if n < 0.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// WithMaxReductionCells caps the transient cells of extra worker grids.
// n == 0 disables private grids, i.e. forces serial execution.
// Panics if n < 0.
func WithMaxReductionCells(n int) Option {
	if n < 0 {
		panic(panicCellsInvalid)
	}

	return func(o *Options) { o.maxReductionCells = n }
}

// WithLogger routes the per-call debug record to l instead of the package logger.
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		workers:           runtime.GOMAXPROCS(0),
		parallelThreshold: DefaultParallelThreshold,
		maxReductionCells: DefaultMaxReductionCells,
		logger:            logger,
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// plan returns the number of workers for n samples on a grid of cells cells.
//   - serial when n is below the threshold or only one worker is allowed;
//   - never more workers than samples;
//   - at most maxReductionCells/cells extra private grids.
func (o Options) plan(n, cells int) int {
	w := o.workers
	if w < 2 || n == 0 || n < o.parallelThreshold {
		return 1
	}
	if w > n {
		w = n
	}
	if extra := o.maxReductionCells / cells; w > extra+1 {
		w = extra + 1
	}

	return w
}

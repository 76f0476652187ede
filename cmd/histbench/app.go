// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/deposit/axis"
	"github.com/katalvlaran/deposit/histogram"
	"github.com/katalvlaran/deposit/internal/logging"
	"github.com/katalvlaran/deposit/shape"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var errBins = errors.New("histbench: --bins needs one value per dimension")

// defaultBins are the grids of the reference timing runs.
var defaultBins = map[int][]int{
	1: {1000},
	2: {1000, 700},
	3: {200, 250, 300},
}

// defaultRange returns the sample range of the reference timing runs.
func defaultRange(dims int) (low, high float64) {
	if dims == 1 {
		return 0.001, 0.999
	}
	return 0.01, 0.99
}

func newApp() *cli.App {
	var (
		npart, dims, repeat, workers int
		bins                         cli.IntSlice
		configFile, samplesFile      string
		weighted                     bool
		logLevel                     string
	)

	return &cli.App{
		Name:  "histbench",
		Usage: "Time NGP/CIC/TSC histograms against a plain histogram.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "npart",
				Usage:       "Number of generated `samples`.",
				Value:       4000000,
				Destination: &npart,
			},
			&cli.IntFlag{
				Name:        "dims",
				Usage:       "Dimensionality (1, 2 or 3).",
				Value:       1,
				Destination: &dims,
			},
			&cli.IntSliceFlag{
				Name:        "bins",
				Usage:       "Bins per axis, repeat once per dimension.",
				Destination: &bins,
			},
			&cli.IntFlag{
				Name:        "repeat",
				Usage:       "Timed calls per measurement.",
				Value:       3,
				Destination: &repeat,
			},
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "Worker goroutines, 0 for GOMAXPROCS.",
				Destination: &workers,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "YAML histogram configuration `file`; overrides --dims and --bins.",
				Destination: &configFile,
			},
			&cli.StringFlag{
				Name:        "samples",
				Usage:       "CSV `file` with x,y,z,w columns instead of generated samples.",
				Destination: &samplesFile,
			},
			&cli.BoolFlag{
				Name:        "weighted",
				Usage:       "Time weighted runs only (reads column w with --samples).",
				Destination: &weighted,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log `level` letter (V, D, I, W, E).",
				Value:       "I",
				EnvVars:     []string{logging.EnvPrefix + "_HISTBENCH"},
				Destination: &logLevel,
			},
		},
		Action: func(c *cli.Context) error {
			var lvl rune
			if logLevel != "" {
				lvl = rune(logLevel[0])
			}
			logger := logging.NewAt("histbench", logging.ParseLevel(lvl))
			defer logger.Sync()

			p := benchParams{
				orders: []shape.Order{shape.NGP, shape.CIC, shape.TSC},
				repeat: max(repeat, 1),
				logger: logger,
				onlyW:  weighted,
			}
			if workers > 0 {
				p.opts = append(p.opts, histogram.WithWorkers(workers))
			}
			p.opts = append(p.opts, histogram.WithLogger(logger))

			if configFile != "" {
				cfg, e := histogram.LoadConfig(configFile)
				if e != nil {
					return e
				}
				p.axes = cfg.Axes
				p.orders = []shape.Order{cfg.Shape}
				p.opts = append(cfg.Options(), p.opts...)
			} else {
				axes, e := makeAxes(dims, bins.Value())
				if e != nil {
					return e
				}
				p.axes = axes
			}

			var e error
			if samplesFile != "" {
				p.coords, p.weights, e = loadSamples(samplesFile, len(p.axes), weighted)
			} else {
				p.coords, p.weights = generateSamples(len(p.axes), npart)
			}
			if e != nil {
				return e
			}
			logger.Info("samples ready",
				zap.Int("dims", len(p.axes)),
				zap.Int("samples", len(p.coords[0])),
				zap.Bool("from-file", samplesFile != ""),
			)

			return runBench(c.App.Writer, p)
		},
	}
}

// makeAxes builds the axes for dims dimensions; bins falls back to the
// reference grid when empty.
func makeAxes(dims int, bins []int) ([]axis.Spec, error) {
	def, ok := defaultBins[dims]
	if !ok {
		return nil, fmt.Errorf("histbench: --dims %d: %w", dims, histogram.ErrDimensions)
	}
	if len(bins) == 0 {
		bins = def
	}
	if len(bins) != dims {
		return nil, errBins
	}

	low, high := defaultRange(dims)
	axes := make([]axis.Spec, dims)
	for k, b := range bins {
		axes[k] = axis.Spec{Bins: b, Low: low, High: high}
	}
	if e := histogram.ValidateAxes(axes); e != nil {
		return nil, e
	}

	return axes, nil
}

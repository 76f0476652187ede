// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	errNoSamples     = errors.New("histbench: sample file has no rows")
	errMissingColumn = errors.New("histbench: sample file lacks a required column")
)

// sampleColumns names the coordinate columns in axis order.
var sampleColumns = [3]string{"x", "y", "z"}

// sampleRecord is one CSV row.
type sampleRecord struct {
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
	Z float64 `csv:"z"`
	W float64 `csv:"w"`
}

// generateSamples draws n uniform samples on [0, 1) per axis plus uniform weights.
func generateSamples(dims, n int) (coords [][]float64, weights []float64) {
	u := distuv.Uniform{Min: 0, Max: 1}
	draw := func() []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = u.Rand()
		}
		return out
	}

	coords = make([][]float64, dims)
	for k := range coords {
		coords[k] = draw()
	}

	return coords, draw()
}

// loadSamples reads samples from a CSV file with a header row naming the
// columns x, y, z and w. The first dims coordinate columns, and w when
// weighted is set, must be present. Weights are returned only when weighted is set.
func loadSamples(path string, dims int, weighted bool) (coords [][]float64, weights []float64, e error) {
	data, e := os.ReadFile(path)
	if e != nil {
		return nil, nil, fmt.Errorf("histbench: opening samples: %w", e)
	}
	if e := checkColumns(data, dims, weighted); e != nil {
		return nil, nil, fmt.Errorf("histbench: reading %s: %w", path, e)
	}

	var records []sampleRecord
	if e := gocsv.UnmarshalBytes(data, &records); e != nil {
		return nil, nil, fmt.Errorf("histbench: reading %s: %w", path, e)
	}
	if len(records) == 0 {
		return nil, nil, errNoSamples
	}

	coords = make([][]float64, dims)
	for k := range coords {
		coords[k] = make([]float64, len(records))
	}
	if weighted {
		weights = make([]float64, len(records))
	}
	for i, r := range records {
		xyz := [3]float64{r.X, r.Y, r.Z}
		for k := range coords {
			coords[k][i] = xyz[k]
		}
		if weighted {
			weights[i] = r.W
		}
	}

	return coords, weights, nil
}

// checkColumns verifies that the header holds every column the run reads;
// gocsv would leave an absent column at zero.
func checkColumns(data []byte, dims int, weighted bool) error {
	header, e := csv.NewReader(bytes.NewReader(data)).Read()
	if errors.Is(e, io.EOF) {
		return errNoSamples
	}
	if e != nil {
		return e
	}

	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[strings.TrimSpace(h)] = true
	}
	need := append([]string(nil), sampleColumns[:dims]...)
	if weighted {
		need = append(need, "w")
	}
	for _, col := range need {
		if !have[col] {
			return fmt.Errorf("%q: %w", col, errMissingColumn)
		}
	}

	return nil
}

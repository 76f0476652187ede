// SPDX-License-Identifier: MIT

package histogram

import (
	"sync"

	"github.com/katalvlaran/deposit/axis"
	"github.com/katalvlaran/deposit/grid"
)

// depositRange deposits samples [i0, i1) into acc and returns how many were dropped.
// parts is per-worker scratch of length len(binners).
func depositRange(acc *grid.Accumulator, binners []*axis.Binner, coords [][]float64, weights []float64, parts []axis.Contribution, i0, i1 int) (dropped int) {
	d := len(binners)

samples:
	for i := i0; i < i1; i++ {
		for k := 0; k < d; k++ {
			parts[k] = binners[k].Bin(coords[k][i])
			if parts[k].N == 0 {
				dropped++
				continue samples
			}
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		acc.Deposit(w, parts)
	}

	return dropped
}

// depositSerial deposits every sample into g on the calling goroutine.
func depositSerial(g *grid.Dense, binners []*axis.Binner, coords [][]float64, weights []float64) int {
	acc, err := grid.NewAccumulator(g)
	if err != nil {
		// dimensionality was validated before g was built
		panic(err)
	}
	parts := make([]axis.Contribution, len(binners))

	return depositRange(acc, binners, coords, weights, parts, 0, len(coords[0]))
}

// workChunk is the contiguous sample range of one worker.
type workChunk struct {
	start, end int
}

// depositParallel splits the samples into workers contiguous chunks.
// Worker 0 writes straight into g, every other worker into a private grid
// of the same shape; after all workers finish the private grids are added
// into g in worker order.
func depositParallel(g *grid.Dense, binners []*axis.Binner, coords [][]float64, weights []float64, workers int) int {
	n := len(coords[0])
	chunkSize := (n + workers - 1) / workers

	chunks := make([]workChunk, 0, workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			break
		}
		chunks = append(chunks, workChunk{start: start, end: end})
	}

	grids := make([]*grid.Dense, len(chunks))
	drops := make([]int, len(chunks))
	grids[0] = g
	for w := 1; w < len(chunks); w++ {
		grids[w] = g.ZerosLike()
	}

	var wg sync.WaitGroup
	for w, c := range chunks {
		wg.Add(1)
		go func(w int, c workChunk) {
			defer wg.Done()
			acc, err := grid.NewAccumulator(grids[w])
			if err != nil {
				panic(err)
			}
			parts := make([]axis.Contribution, len(binners))
			drops[w] = depositRange(acc, binners, coords, weights, parts, c.start, c.end)
		}(w, c)
	}
	wg.Wait()

	dropped := drops[0]
	for w := 1; w < len(chunks); w++ {
		if err := g.AddGrid(grids[w]); err != nil {
			panic(err)
		}
		dropped += drops[w]
	}

	return dropped
}

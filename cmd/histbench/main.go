// SPDX-License-Identifier: MIT

// Command histbench times shape-weighted histograms of uniform random samples
// against a plain single-bin histogram.
//
//	histbench --dims 2 --npart 4000000
//	histbench --config hist.yaml --samples particles.csv --weighted
package main

import (
	"log"
	"os"
)

func main() {
	if e := newApp().Run(os.Args); e != nil {
		log.Fatal(e)
	}
}

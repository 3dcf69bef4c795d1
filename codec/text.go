// SPDX-License-Identifier: MIT
// Package: tspgen/codec
//
// text.go - line-oriented instance format.
//
//	c This instance has been generated with tspgen
//	c nb_cities=3 nb_centroids=1 max=1000 std_dev=10 seed=42 ...
//	c --- destinations ----------------------------
//	c  123.45678  456.78901
//	...
//	c --- distances -------------------------------
//	        0.00000      12.34567 ...
//
// Lines starting with "c" are comments for TSP tooling; the matrix rows are
// the payload.

package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/tspgen/cluster"
)

// WriteText writes inst in the line-oriented format.
func WriteText(w io.Writer, inst *cluster.Instance) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "c This instance has been generated with tspgen")
	fmt.Fprintf(bw, "c nb_cities=%d nb_centroids=%d max=%g std_dev=%g seed=%d assignment=%s boundary=%s\n",
		inst.Params.Cities, inst.Params.Centroids, inst.Params.MaxWidth, inst.Params.StdDev,
		inst.Seed, inst.Params.Assignment, inst.Params.Boundary)
	fmt.Fprintln(bw, "c --- destinations ----------------------------")
	for _, c := range inst.Cities {
		fmt.Fprintf(bw, "c %10.5f %10.5f\n", c.X, c.Y)
	}
	fmt.Fprintln(bw, "c --- distances -------------------------------")

	if d := inst.DistanceMatrix(); d != nil {
		n, _ := d.Dims()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				fmt.Fprintf(bw, "%15.5f ", d.At(i, j))
			}
			fmt.Fprintln(bw)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: write text: %w", err)
	}
	return nil
}

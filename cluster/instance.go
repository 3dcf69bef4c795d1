// SPDX-License-Identifier: MIT
// Package: tspgen/cluster
//
// instance.go - Instance Assembler and derived views.

package cluster

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Assemble bundles cities, centroids and the parameters that produced them.
// Under the Clamp boundary every city component is moved into [0, MaxWidth);
// the input slice is not modified. seed is the seed the source actually used.
//
// Complexity: O(n).
func Assemble(cities []City, centroids []Coordinate, p Params, seed uint64) *Instance {
	out := make([]City, len(cities))
	copy(out, cities)

	if p.Boundary == Clamp {
		hi := math.Nextafter(p.MaxWidth, 0)
		for i := range out {
			out[i].X = clamp(out[i].X, 0, hi)
			out[i].Y = clamp(out[i].Y, 0, hi)
		}
	}

	cs := make([]Coordinate, len(centroids))
	copy(cs, centroids)

	return &Instance{
		Cities:    out,
		Centroids: cs,
		Params:    p,
		Seed:      seed,
	}
}

// DistanceMatrix returns the symmetric n×n Euclidean distance matrix between
// cities, zero on the diagonal. It returns nil when there is no city.
//
// Complexity: O(n²) time and space.
func (in *Instance) DistanceMatrix() *mat.Dense {
	n := len(in.Cities)
	if n == 0 {
		return nil
	}
	d := mat.NewDense(n, n, nil)

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = r2.Norm(r2.Sub(in.Cities[i].Coordinate, in.Cities[j].Coordinate))
			d.Set(i, j, w)
			d.Set(j, i, w)
		}
	}
	return d
}

// ClusterSizes returns how many cities each centroid anchors.
func (in *Instance) ClusterSizes() []int {
	out := make([]int, len(in.Centroids))
	for _, c := range in.Cities {
		if c.Centroid >= 0 && c.Centroid < len(out) {
			out[c.Centroid]++
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

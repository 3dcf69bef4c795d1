// SPDX-License-Identifier: MIT
// Package: tspgen/cluster
//
// centroids.go - Centroid Placer.
//
// Determinism:
//   - Draw order is x then y, centroid 0 first.
//   - Collisions are permitted and kept.

package cluster

// PlaceCentroids returns exactly n centroids, each component drawn with
// src.Uniform(0, maxWidth). n <= 0 yields an empty, non-nil slice.
//
// Complexity: O(n) time, O(n) space, 2n draws.
func PlaceCentroids(n int, maxWidth float64, src RandomSource) []Coordinate {
	if n < 0 {
		n = 0
	}
	out := make([]Coordinate, n)

	var i int
	for i = 0; i < n; i++ {
		out[i].X = src.Uniform(0, maxWidth)
		out[i].Y = src.Uniform(0, maxWidth)
	}
	return out
}

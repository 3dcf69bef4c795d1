// SPDX-License-Identifier: MIT
// Package: tspgen/cluster
//
// cities.go - City Sampler.
//
// Every city is its anchor centroid plus an isotropic Gaussian offset:
//
//	dx = src.Gaussian(0, σ); dy = src.Gaussian(0, σ)
//	city = centroid + (dx, dy)
//
// Draw order per city: [centroid index (UniformRandom only)], dx, dy.

package cluster

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// SampleCities returns exactly n cities anchored to centroids under policy.
// It fails with ErrInvalidConfiguration when n > 0 and there is no centroid,
// or when policy is unknown. n <= 0 yields an empty, non-nil slice.
//
// Complexity: O(n) time, O(n) space.
func SampleCities(n int, centroids []Coordinate, stdDev float64, policy Assignment, src RandomSource) ([]City, error) {
	if n <= 0 {
		return []City{}, nil
	}
	c := len(centroids)
	if c == 0 {
		return nil, fmt.Errorf("%s: %d cities, no centroid to anchor them: %w", methodSampleCities, n, ErrInvalidConfiguration)
	}

	var anchors []int
	switch policy {
	case RoundRobin:
		anchors = roundRobinAnchors(n, c)
	case Blocked:
		anchors = blockedAnchors(n, c)
	case UniformRandom:
		anchors = nil // drawn per city to keep the index draw next to its offset
	default:
		return nil, fmt.Errorf("%s: %v: %w", methodSampleCities, policy, ErrInvalidConfiguration)
	}

	out := make([]City, n)

	var (
		i, k   int
		dx, dy float64
	)
	for i = 0; i < n; i++ {
		if anchors == nil {
			k = src.IntN(c)
		} else {
			k = anchors[i]
		}
		dx = src.Gaussian(0, stdDev)
		dy = src.Gaussian(0, stdDev)
		out[i] = City{
			Coordinate: r2.Add(centroids[k], r2.Vec{X: dx, Y: dy}),
			Centroid:   k,
		}
	}
	return out, nil
}

// roundRobinAnchors maps city i to centroid i mod c.
func roundRobinAnchors(n, c int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i % c
	}
	return out
}

// blockedAnchors gives each centroid n/c consecutive cities, the first n mod c
// centroids receiving one extra.
func blockedAnchors(n, c int) []int {
	out := make([]int, 0, n)

	var (
		k, j, size int
		base       = n / c
		extra      = n % c
	)
	for k = 0; k < c; k++ {
		size = base
		if k < extra {
			size++
		}
		for j = 0; j < size; j++ {
			out = append(out, k)
		}
	}
	return out
}

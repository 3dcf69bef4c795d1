// SPDX-License-Identifier: MIT
// Package: tspgen/cluster
//
// generate.go - single entry point of the core.
//
// Flow (fixed order, one random source threaded through):
//   validate → resolve source → PlaceCentroids → SampleCities → Assemble.

package cluster

import "fmt"

// Generate produces a clustered instance with nbCities cities around
// nbCentroids centroids on the square map [0, maxWidth)².
//
// Options: WithSeed, WithSource, WithAssignment, WithBoundary. Without a
// seed or a source the run is seeded from OS entropy and the drawn seed is
// recorded in Instance.Seed.
//
// Errors: ErrInvalidConfiguration (wrapped) for any out-of-domain parameter.
// No partial instance is returned on failure.
//
// Complexity: O(nbCities + nbCentroids).
func Generate(nbCities, nbCentroids int, maxWidth, stdDev float64, opts ...Option) (*Instance, error) {
	cfg := newGenConfig(opts...)
	p := Params{
		Cities:     nbCities,
		Centroids:  nbCentroids,
		MaxWidth:   maxWidth,
		StdDev:     stdDev,
		Seed:       cfg.seed,
		Assignment: cfg.assignment,
		Boundary:   cfg.boundary,
	}
	return generate(p, cfg)
}

// GenerateParams is Generate driven by a Params value, as loaded from a
// configuration file or replayed from a saved instance.
func GenerateParams(p Params) (*Instance, error) {
	opts := []Option{WithAssignment(p.Assignment), WithBoundary(p.Boundary)}
	if p.Seed != nil {
		opts = append(opts, WithSeed(*p.Seed))
	}
	return Generate(p.Cities, p.Centroids, p.MaxWidth, p.StdDev, opts...)
}

func generate(p Params, cfg genConfig) (*Instance, error) {
	if err := validateParams(methodGenerate, p); err != nil {
		return nil, err
	}

	src, seed, err := cfg.source()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	centroids := PlaceCentroids(p.Centroids, p.MaxWidth, src)
	cities, err := SampleCities(p.Cities, centroids, p.StdDev, p.Assignment, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return Assemble(cities, centroids, p, seed), nil
}

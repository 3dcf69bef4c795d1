// SPDX-License-Identifier: MIT
// Package: tspgen/cluster
//
// types.go - data model of a clustered instance and its generation policies.

package cluster

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Coordinate is a position on the planar map.
type Coordinate = r2.Vec

// RandomSource is the subset of *rng.Source used by the generation steps.
// Draws happen in a fixed, documented order so a deterministic source gives
// a deterministic instance.
type RandomSource interface {
	// Uniform returns a value in [low, high).
	Uniform(low, high float64) float64
	// Gaussian returns mean + stdDev·N(0,1).
	Gaussian(mean, stdDev float64) float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// City is a point to visit. Centroid is the index of the centroid it was
// drawn around; it is informational and not needed by route consumers.
type City struct {
	Coordinate
	Centroid int
}

// Assignment selects which centroid anchors each generated city.
type Assignment int

const (
	// RoundRobin anchors city i to centroid i mod c. Cluster sizes differ by
	// at most one and do not depend on the seed.
	RoundRobin Assignment = iota
	// Blocked gives every centroid n/c cities (the first n mod c get one more)
	// and emits them centroid by centroid.
	Blocked
	// UniformRandom draws the centroid index of every city from the source
	// before its offset.
	UniformRandom
)

var assignmentNames = map[Assignment]string{
	RoundRobin:    "round-robin",
	Blocked:       "blocked",
	UniformRandom: "uniform",
}

// String returns the flag spelling of the policy.
func (a Assignment) String() string {
	if s, ok := assignmentNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Assignment(%d)", int(a))
}

// ParseAssignment maps a flag spelling back to its policy.
func ParseAssignment(s string) (Assignment, error) {
	for a, name := range assignmentNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%s: unknown assignment %q: %w", methodParse, s, ErrInvalidConfiguration)
}

// Boundary selects what happens to cities perturbed outside the map.
type Boundary int

const (
	// Unbounded leaves cities where the Gaussian offset put them; they may
	// fall outside [0, M).
	Unbounded Boundary = iota
	// Clamp moves every city component into [0, M).
	Clamp
)

var boundaryNames = map[Boundary]string{
	Unbounded: "none",
	Clamp:     "clamp",
}

// String returns the flag spelling of the policy.
func (b Boundary) String() string {
	if s, ok := boundaryNames[b]; ok {
		return s
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary maps a flag spelling back to its policy.
func ParseBoundary(s string) (Boundary, error) {
	for b, name := range boundaryNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%s: unknown boundary %q: %w", methodParse, s, ErrInvalidConfiguration)
}

// Params records everything needed to reproduce an instance.
type Params struct {
	// Cities is the number of cities to generate.
	Cities int
	// Centroids is the number of cluster anchors.
	Centroids int
	// MaxWidth is the side M of the square map [0, M)².
	MaxWidth float64
	// StdDev is the deviation of the isotropic Gaussian offset.
	StdDev float64
	// Seed is the requested seed; nil means "seed from entropy".
	Seed *uint64
	// Assignment is the centroid selection policy.
	Assignment Assignment
	// Boundary is the out-of-map policy.
	Boundary Boundary
}

// DefaultParams returns the command-line defaults: 10 cities, 3 centroids,
// a 1000-wide map, deviation 10, no seed, round-robin, unbounded.
func DefaultParams() Params {
	return Params{
		Cities:     DefaultCities,
		Centroids:  DefaultCentroids,
		MaxWidth:   DefaultMaxWidth,
		StdDev:     DefaultStdDev,
		Assignment: RoundRobin,
		Boundary:   Unbounded,
	}
}

// Instance is one generated problem.
type Instance struct {
	// Cities in generation order; the slice index is the city index used by routes.
	Cities []City
	// Centroids in generation order.
	Centroids []Coordinate
	// Params used for generation.
	Params Params
	// Seed actually used by the random source. Equal to *Params.Seed when a
	// seed was requested; the entropy-drawn seed otherwise. Zero when the
	// caller supplied its own source through WithSource.
	Seed uint64
}

// Positions returns the city coordinates without their centroid tags.
func (in *Instance) Positions() []Coordinate {
	out := make([]Coordinate, len(in.Cities))
	for i, c := range in.Cities {
		out[i] = c.Coordinate
	}
	return out
}

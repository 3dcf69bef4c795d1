// SPDX-License-Identifier: MIT
// Package: tspgen/cluster
//
// options.go - functional options for Generate.
//
// Contract:
//   - Options mutate a private genConfig before any draw happens.
//   - Later options override earlier ones.
//   - WithSource(nil) panics: a nil source is a programmer error.
//   - WithSeed and WithSource are mutually exclusive; the last one wins.

package cluster

import "github.com/katalvlaran/tspgen/rng"

// Defaults mirrored by DefaultParams and the command line.
const (
	DefaultCities    = 10
	DefaultCentroids = 3
	DefaultMaxWidth  = 1000.0
	DefaultStdDev    = 10.0
)

// Option customizes a Generate call.
type Option func(*genConfig)

// genConfig is the resolved option set of one Generate call.
type genConfig struct {
	seed       *uint64
	src        RandomSource
	assignment Assignment
	boundary   Boundary
}

// newGenConfig applies opts over the defaults (round-robin, unbounded, entropy).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		assignment: RoundRobin,
		boundary:   Unbounded,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed makes the run reproducible: identical parameters and seed give
// identical centroids and cities.
func WithSeed(seed uint64) Option {
	return func(c *genConfig) {
		s := seed
		c.seed = &s
		c.src = nil
	}
}

// WithSource uses a caller-owned random source. The instance records no seed.
func WithSource(src RandomSource) Option {
	if src == nil {
		panic("cluster: WithSource(nil)")
	}
	return func(c *genConfig) {
		c.src = src
		c.seed = nil
	}
}

// WithAssignment selects the centroid assignment policy (default RoundRobin).
func WithAssignment(a Assignment) Option {
	return func(c *genConfig) {
		c.assignment = a
	}
}

// WithBoundary selects the out-of-map policy (default Unbounded).
func WithBoundary(b Boundary) Option {
	return func(c *genConfig) {
		c.boundary = b
	}
}

// source resolves the random source and the seed it reports.
func (c genConfig) source() (RandomSource, uint64, error) {
	if c.src != nil {
		return c.src, 0, nil
	}
	if c.seed != nil {
		return rng.New(*c.seed), *c.seed, nil
	}
	s, err := rng.NewEntropy()
	if err != nil {
		return nil, 0, err
	}
	return s, s.Seed(), nil
}

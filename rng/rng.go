// SPDX-License-Identifier: MIT
// Package: tspgen/rng
//
// rng.go - the single random source shared by every generation step.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws on every platform.
//   - Encapsulation: one factory per seed policy; no package-level generator.
//   - Safety: no panics and no logging.
//
// Concurrency:
//   - *Source is NOT goroutine-safe. Create one Source per generation run.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
)

// chachaKeyWords is the number of 64-bit words in a ChaCha8 key (32 bytes).
const chachaKeyWords = 4

// Source draws uniform, Gaussian and integer values from a ChaCha8 stream.
type Source struct {
	r    *rand.Rand
	seed uint64
}

// New returns a deterministic Source for seed.
// The 64-bit seed is expanded into the 32-byte ChaCha8 key with deriveSeed,
// one word per stream id, so neighbouring seeds produce unrelated streams.
//
// Complexity: O(1).
func New(seed uint64) *Source {
	var (
		key [32]byte
		i   int
	)
	for i = 0; i < chachaKeyWords; i++ {
		binary.LittleEndian.PutUint64(key[i*8:], deriveSeed(seed, uint64(i)))
	}

	return &Source{
		r:    rand.New(rand.NewChaCha8(key)),
		seed: seed,
	}
}

// NewEntropy returns a Source seeded from the operating system entropy pool.
// The drawn seed is kept so Seed can report it; callers that record it can
// replay the run with New.
func NewEntropy() (*Source, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("rng: read entropy: %w", err)
	}

	return New(binary.LittleEndian.Uint64(buf[:])), nil
}

// Seed returns the seed this Source was created from.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Uniform returns a value uniformly distributed in [low, high).
// When high <= low the result is low.
//
// Complexity: O(1).
func (s *Source) Uniform(low, high float64) float64 {
	if high <= low {
		return low
	}
	v := low + (high-low)*s.r.Float64()
	// low + span*u can round up to high for u close to 1.
	if v >= high {
		return math.Nextafter(high, low)
	}

	return v
}

// Gaussian returns a normal deviate with the given mean and standard deviation.
// A zero deviation always returns mean exactly.
//
// Complexity: O(1) amortised (ziggurat).
func (s *Source) Gaussian(mean, stdDev float64) float64 {
	return mean + stdDev*s.r.NormFloat64()
}

// IntN returns a uniform integer in [0, n). It returns 0 when n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}

	return s.r.IntN(n)
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit word.
// SplitMix64 finalizer: small input changes spread over all output bits.
//
// Complexity: O(1).
func deriveSeed(parent uint64, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

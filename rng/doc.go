// Package rng provides the explicit random source used by tspgen.
//
// A Source is created once per run and passed by pointer to every step that
// draws random values. There is no package-level generator.
//
// Seed policy:
//
//   - New(seed): fully deterministic. The same seed and the same sequence of
//     draws yield the same values on every machine (ChaCha8 keyed from the
//     seed through a SplitMix64 mixer).
//   - NewEntropy(): seeded from crypto/rand. The drawn seed is exposed through
//     Seed so the run can be replayed if the caller records it.
//
// Draws:
//
//	Uniform(low, high)   // [low, high)
//	Gaussian(mean, σ)    // mean + σ·N(0,1); σ = 0 returns mean exactly
//	IntN(n)              // [0, n)
package rng

// Package cluster generates Traveling Salesman Problem instances whose cities
// are grouped around randomly placed centroids.
//
// What it does:
//
//  1. Centroid Placer: nbCentroids points uniform in [0, M)².
//  2. City Sampler: each city = its centroid + (N(0,σ), N(0,σ)).
//  3. Instance Assembler: cities, centroids and the parameters used.
//
// Reproducibility: with WithSeed, two Generate calls with identical arguments
// return element-wise identical centroids and cities. The random source is an
// explicit value (see package rng); there is no package-level state.
//
// Policies:
//
//	Assignment  RoundRobin (default) | Blocked | UniformRandom
//	Boundary    Unbounded (default)  | Clamp
//
// Under Unbounded, cities close to the map edge may fall outside [0, M).
// The policies are part of Params and therefore of the reproducibility key.
//
// Example:
//
//	inst, err := cluster.Generate(100, 5, 1000, 25, cluster.WithSeed(42))
//	if err != nil {
//		// errors.Is(err, cluster.ErrInvalidConfiguration)
//	}
//	d := inst.DistanceMatrix() // *mat.Dense, Euclidean
//
// Errors:
//
//	ErrInvalidConfiguration: negative counts, cities without any centroid,
//	maxWidth ≤ 0, stdDev < 0, non-finite values, unknown policy, or a
//	maxWidth and stdDev whose sum could leave the float64 range (see
//	Params.Validate).
package cluster

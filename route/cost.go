// SPDX-License-Identifier: MIT
// Package: tspgen/route
//
// cost.go - length of a route over a distance matrix.
//
// Design:
//   - Works on any gonum mat.Matrix (Instance.DistanceMatrix returns *mat.Dense).
//   - Defensive checks (shape, indices, NaN/Inf/negative) on every leg.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.

package route

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// Length sums dist(r[i], r[i+1]) over consecutive legs of r. A single-city
// route has length 0. Close the route first to include the return leg.
//
// Complexity: O(len(r)).
func Length(dist mat.Matrix, r Route) (float64, error) {
	if len(r) == 0 {
		return 0, ErrEmptyRoute
	}
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	n, c := dist.Dims()
	if n != c {
		return 0, fmt.Errorf("route: %dx%d: %w", n, c, ErrDimensionMismatch)
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
	)
	for i = 0; i < len(r); i++ {
		if r[i] < 0 || r[i] >= n {
			return 0, fmt.Errorf("route: position %d: index %d not in [0,%d): %w", i, r[i], n, ErrIndexOutOfRange)
		}
	}
	for i = 0; i+1 < len(r); i++ {
		u = r[i]
		v = r[i+1]
		w = dist.At(u, v)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, fmt.Errorf("route: leg %d→%d = %g: %w", u, v, w, ErrBadWeight)
		}
		sum += w
	}
	return round1e9(sum), nil
}

// round1e9 rounds x to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

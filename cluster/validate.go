// SPDX-License-Identifier: MIT
// Package: tspgen/cluster
//
// validate.go - parameter domain checks run before any random draw.
//
// Priority when several checks fail (first reported wins):
//   counts → anchor availability → map width → deviation → extent → policies.

package cluster

import (
	"fmt"
	"math"
)

// tailSigmas bounds how far, in standard deviations, a city is assumed to
// land from its centroid when checking the float64 range.
const tailSigmas = 16.0

// Validate reports whether p is inside the generator's domain. It returns a
// wrapped ErrInvalidConfiguration for the first violated constraint, or nil.
//
// Besides the per-field checks, maxWidth + 16·stdDev must stay below a quarter
// of math.MaxFloat64, so that every coordinate and every pairwise distance of
// a generated instance is finite.
//
// Complexity: O(1).
func (p Params) Validate() error {
	return validateParams(methodValidate, p)
}

func validateParams(method string, p Params) error {
	if p.Cities < 0 {
		return fmt.Errorf("%s: nbCities=%d < 0: %w", method, p.Cities, ErrInvalidConfiguration)
	}
	if p.Centroids < 0 {
		return fmt.Errorf("%s: nbCentroids=%d < 0: %w", method, p.Centroids, ErrInvalidConfiguration)
	}
	if p.Centroids == 0 && p.Cities > 0 {
		return fmt.Errorf("%s: %d cities need at least one centroid: %w", method, p.Cities, ErrInvalidConfiguration)
	}
	if !isFinite(p.MaxWidth) || p.MaxWidth <= 0 {
		return fmt.Errorf("%s: maxWidth=%g must be finite and > 0: %w", method, p.MaxWidth, ErrInvalidConfiguration)
	}
	if !isFinite(p.StdDev) || p.StdDev < 0 {
		return fmt.Errorf("%s: stdDev=%g must be finite and >= 0: %w", method, p.StdDev, ErrInvalidConfiguration)
	}
	if extent := p.MaxWidth + tailSigmas*p.StdDev; !isFinite(4 * extent) {
		return fmt.Errorf("%s: maxWidth=%g with stdDev=%g exceeds the float64 range: %w", method, p.MaxWidth, p.StdDev, ErrInvalidConfiguration)
	}
	if _, ok := assignmentNames[p.Assignment]; !ok {
		return fmt.Errorf("%s: %v: %w", method, p.Assignment, ErrInvalidConfiguration)
	}
	if _, ok := boundaryNames[p.Boundary]; !ok {
		return fmt.Errorf("%s: %v: %w", method, p.Boundary, ErrInvalidConfiguration)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SPDX-License-Identifier: MIT
// Package: tspgen/route
//
// errors.go - sentinel errors for route parsing, validation and costing.
// Callers branch with errors.Is; context is attached with %w.

package route

import "errors"

var (
	// ErrEmptyRoute is returned for a route without any city.
	ErrEmptyRoute = errors.New("route: empty route")

	// ErrBadToken is returned when a route token is not a decimal integer.
	ErrBadToken = errors.New("route: token is not a city index")

	// ErrIndexOutOfRange is returned when a city index is outside [0, n).
	ErrIndexOutOfRange = errors.New("route: city index out of range")

	// ErrRepeatedCity is returned when a city appears twice, other than the
	// closing return to the first city.
	ErrRepeatedCity = errors.New("route: city visited twice")

	// ErrDimensionMismatch is returned for a nil or non-square distance matrix.
	ErrDimensionMismatch = errors.New("route: distance matrix is not square")

	// ErrBadWeight is returned for a NaN, infinite or negative leg length.
	ErrBadWeight = errors.New("route: invalid leg length")

	// ErrBadSpeed is returned when the travel speed is not finite and > 0.
	ErrBadSpeed = errors.New("route: speed must be finite and > 0")
)

// SPDX-License-Identifier: MIT
// Package: tspgen/cluster
//
// errors.go - sentinel errors and method tags for the cluster package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with "%s: ...: %w" using a method tag.
//   - Algorithms never panic on user input; option constructors may panic on
//     programmer error (nil source).

package cluster

import "errors"

// ErrInvalidConfiguration indicates that a generation parameter is outside its
// domain: negative counts, no centroid to anchor a city, a non-positive or
// non-finite map width, a negative or non-finite deviation, a map width and
// deviation too large to keep coordinates finite, or an unknown policy.
// Generation is all-or-nothing: no partial instance accompanies this error.
var ErrInvalidConfiguration = errors.New("cluster: invalid configuration")

// Method tags used as error prefixes.
const (
	methodGenerate     = "Generate"
	methodValidate     = "Validate"
	methodSampleCities = "SampleCities"
	methodParse        = "Parse"
)

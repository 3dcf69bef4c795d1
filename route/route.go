// SPDX-License-Identifier: MIT
// Package: tspgen/route
//
// route.go - route representation, parsing and validation.
//
// A Route is an ordered list of city indices. It may be open (0 3 1 2) or
// closed (0 3 1 2 0); only the closing return to the first city may repeat.

package route

import (
	"fmt"
	"strconv"
	"strings"
)

// Route is an ordered sequence of city indices into Instance.Cities.
type Route []int

// Parse reads whitespace-separated city indices, e.g. "0 3 1 2".
//
// Complexity: O(len(s)).
func Parse(s string) (Route, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, ErrEmptyRoute
	}
	out := make(Route, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("route: token %d (%q): %w", i, f, ErrBadToken)
		}
		out[i] = v
	}
	return out, nil
}

// String renders the route in the format accepted by Parse.
func (r Route) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Closed reports whether the route ends where it starts.
func (r Route) Closed() bool {
	return len(r) >= 2 && r[0] == r[len(r)-1]
}

// Close returns a closed copy of r. A closed or empty route is copied as is.
func (r Route) Close() Route {
	out := make(Route, len(r), len(r)+1)
	copy(out, r)
	if len(r) > 0 && !r.Closed() {
		out = append(out, r[0])
	}
	return out
}

// Validate checks r against an instance of n cities: non-empty, indices in
// [0, n), no city twice except the closing vertex.
//
// Complexity: O(len(r)) time, O(n) space.
func (r Route) Validate(n int) error {
	if len(r) == 0 {
		return ErrEmptyRoute
	}
	if n < 0 {
		n = 0
	}
	last := len(r)
	if r.Closed() {
		last--
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < len(r); i++ {
		v = r[i]
		if v < 0 || v >= n {
			return fmt.Errorf("route: position %d: index %d not in [0,%d): %w", i, v, n, ErrIndexOutOfRange)
		}
		if i >= last {
			continue
		}
		if seen[v] {
			return fmt.Errorf("route: position %d: city %d: %w", i, v, ErrRepeatedCity)
		}
		seen[v] = true
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Package: tspgen/route
//
// summary.go - total distance and travel time of a route, as shown by the
// visualization popup.

package route

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultSpeed is the travel speed in map units per hour.
const DefaultSpeed = 50.0

const secondsPerHour = 3600.0

// Summary describes one validated route.
type Summary struct {
	// Route as travelled (closed when Summarize was asked to close it).
	Route Route
	// Distance is the total length in map units.
	Distance float64
	// Seconds is the travel time at the requested speed, floored to whole
	// seconds. Not bounded by the range of time.Duration.
	Seconds float64
}

// Summarize validates r against dist, optionally closes it, and computes its
// length and travel time at speed map units per hour.
func Summarize(dist mat.Matrix, r Route, speed float64, closed bool) (Summary, error) {
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return Summary{}, fmt.Errorf("route: speed=%g: %w", speed, ErrBadSpeed)
	}
	if dist == nil {
		return Summary{}, ErrDimensionMismatch
	}
	n, _ := dist.Dims()
	if err := r.Validate(n); err != nil {
		return Summary{}, err
	}
	if closed {
		r = r.Close()
	}
	d, err := Length(dist, r)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Route:    r,
		Distance: d,
		Seconds:  math.Floor(d / speed * secondsPerHour),
	}, nil
}

// DistanceText formats the distance with two decimals.
func (s Summary) DistanceText() string {
	return fmt.Sprintf("%.2f", s.Distance)
}

// DurationText formats the duration as "H hours M minutes S seconds".
func (s Summary) DurationText() string {
	return FormatDuration(s.Seconds)
}

// FormatDuration renders seconds, floored to whole seconds, as
// "H hours M minutes S seconds". Negative or NaN input formats as zero.
func FormatDuration(seconds float64) string {
	if !(seconds > 0) {
		seconds = 0
	}
	total := math.Floor(seconds)
	h := math.Floor(total / secondsPerHour)
	rest := total - h*secondsPerHour
	m := math.Floor(rest / 60)
	sec := rest - m*60
	return fmt.Sprintf("%.0f hours %.0f minutes %.0f seconds", h, m, sec)
}

// SPDX-License-Identifier: MIT
// Package: tspgen/codec
//
// format.go - output formats and the Encode dispatcher.

package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/tspgen/cluster"
)

var (
	// ErrUnknownFormat is returned for an output format name that is not supported.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrMalformedInstance is returned when a decoded instance breaks the
	// generator invariants (counts, centroid tags, policies).
	ErrMalformedInstance = errors.New("codec: malformed instance")
)

// Format selects the serialization of an instance.
type Format int

const (
	// JSON is the native instance document, readable back with ReadJSON.
	JSON Format = iota
	// GeoJSON is a FeatureCollection of city and centroid points.
	GeoJSON
	// Text is the line-oriented format: commented coordinates, then the
	// distance matrix.
	Text
)

var formatNames = map[Format]string{
	JSON:    "json",
	GeoJSON: "geojson",
	Text:    "text",
}

// String returns the flag spelling of f.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a flag spelling to its Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("codec: %q: %w", s, ErrUnknownFormat)
}

// EncodeOptions tunes Encode.
type EncodeOptions struct {
	// Distances embeds the Euclidean distance matrix in the JSON document.
	// The text format always carries it; GeoJSON never does.
	Distances bool
}

// Encode writes inst to w in format f.
func Encode(w io.Writer, inst *cluster.Instance, f Format, opts EncodeOptions) error {
	switch f {
	case JSON:
		return WriteJSON(w, inst, opts.Distances)
	case GeoJSON:
		return WriteGeoJSON(w, inst)
	case Text:
		return WriteText(w, inst)
	default:
		return fmt.Errorf("codec: %v: %w", f, ErrUnknownFormat)
	}
}

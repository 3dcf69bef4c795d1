// SPDX-License-Identifier: MIT
// Package: tspgen/codec
//
// json.go - the native instance document.
//
//	{
//	  "params":    {"nb_cities":10,"nb_centroids":3,"max":1000,"std_dev":10,
//	                "seed":42,"assignment":"round-robin","boundary":"none"},
//	  "seed":      42,
//	  "cities":    [{"x":..,"y":..,"centroid":0}, ...],
//	  "centroids": [{"x":..,"y":..}, ...],
//	  "distances": [[..], ...]            // optional
//	}

package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/tspgen/cluster"
)

type paramsDoc struct {
	Cities     int     `json:"nb_cities"`
	Centroids  int     `json:"nb_centroids"`
	MaxWidth   float64 `json:"max"`
	StdDev     float64 `json:"std_dev"`
	Seed       *uint64 `json:"seed,omitempty"`
	Assignment string  `json:"assignment"`
	Boundary   string  `json:"boundary"`
}

type pointDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type cityDoc struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Centroid int     `json:"centroid"`
}

type instanceDoc struct {
	Params    paramsDoc   `json:"params"`
	Seed      uint64      `json:"seed"`
	Cities    []cityDoc   `json:"cities"`
	Centroids []pointDoc  `json:"centroids"`
	Distances [][]float64 `json:"distances,omitempty"`
}

// WriteJSON writes inst as an indented instance document. With distances set,
// the n×n Euclidean matrix is embedded.
func WriteJSON(w io.Writer, inst *cluster.Instance, distances bool) error {
	doc := toDoc(inst, distances)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("codec: encode json: %w", err)
	}
	return nil
}

// ReadJSON decodes an instance document written by WriteJSON and checks it
// against the generator invariants. An embedded distance matrix is ignored;
// it is always derived from the coordinates.
func ReadJSON(r io.Reader) (*cluster.Instance, error) {
	var doc instanceDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec: decode json: %w", err)
	}
	return fromDoc(doc)
}

func toDoc(inst *cluster.Instance, distances bool) instanceDoc {
	doc := instanceDoc{
		Params: paramsDoc{
			Cities:     inst.Params.Cities,
			Centroids:  inst.Params.Centroids,
			MaxWidth:   inst.Params.MaxWidth,
			StdDev:     inst.Params.StdDev,
			Seed:       inst.Params.Seed,
			Assignment: inst.Params.Assignment.String(),
			Boundary:   inst.Params.Boundary.String(),
		},
		Seed:      inst.Seed,
		Cities:    make([]cityDoc, len(inst.Cities)),
		Centroids: make([]pointDoc, len(inst.Centroids)),
	}
	for i, c := range inst.Cities {
		doc.Cities[i] = cityDoc{X: c.X, Y: c.Y, Centroid: c.Centroid}
	}
	for i, c := range inst.Centroids {
		doc.Centroids[i] = pointDoc{X: c.X, Y: c.Y}
	}

	if distances {
		if d := inst.DistanceMatrix(); d != nil {
			n, _ := d.Dims()
			doc.Distances = make([][]float64, n)
			for i := 0; i < n; i++ {
				doc.Distances[i] = append([]float64(nil), d.RawRowView(i)...)
			}
		}
	}
	return doc
}

func fromDoc(doc instanceDoc) (*cluster.Instance, error) {
	assignment, err := cluster.ParseAssignment(doc.Params.Assignment)
	if err != nil {
		return nil, fmt.Errorf("codec: %v: %w", err, ErrMalformedInstance)
	}
	boundary, err := cluster.ParseBoundary(doc.Params.Boundary)
	if err != nil {
		return nil, fmt.Errorf("codec: %v: %w", err, ErrMalformedInstance)
	}
	p := cluster.Params{
		Cities:     doc.Params.Cities,
		Centroids:  doc.Params.Centroids,
		MaxWidth:   doc.Params.MaxWidth,
		StdDev:     doc.Params.StdDev,
		Seed:       doc.Params.Seed,
		Assignment: assignment,
		Boundary:   boundary,
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("codec: %w: %w", err, ErrMalformedInstance)
	}
	if len(doc.Cities) != doc.Params.Cities {
		return nil, fmt.Errorf("codec: %d cities, params say %d: %w", len(doc.Cities), doc.Params.Cities, ErrMalformedInstance)
	}
	if len(doc.Centroids) != doc.Params.Centroids {
		return nil, fmt.Errorf("codec: %d centroids, params say %d: %w", len(doc.Centroids), doc.Params.Centroids, ErrMalformedInstance)
	}

	cities := make([]cluster.City, len(doc.Cities))
	for i, c := range doc.Cities {
		if c.Centroid < 0 || c.Centroid >= len(doc.Centroids) {
			return nil, fmt.Errorf("codec: city %d: centroid %d: %w", i, c.Centroid, ErrMalformedInstance)
		}
		cities[i] = cluster.City{Coordinate: cluster.Coordinate{X: c.X, Y: c.Y}, Centroid: c.Centroid}
	}
	centroids := make([]cluster.Coordinate, len(doc.Centroids))
	for i, c := range doc.Centroids {
		centroids[i] = cluster.Coordinate{X: c.X, Y: c.Y}
	}

	return &cluster.Instance{
		Cities:    cities,
		Centroids: centroids,
		Params:    p,
		Seed:      doc.Seed,
	}, nil
}

// SPDX-License-Identifier: MIT
// Package: tspgen/codec
//
// geojson.go - GeoJSON views of an instance and of a route.
//
// Every city and centroid becomes a Point feature with properties:
//
//	kind      "city" | "centroid"
//	index     position in its slice (city index = route index)
//	centroid  anchor index (cities only)
//
// Coordinates are planar (x, y), written in GeoJSON [x, y] order.

package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/tspgen/cluster"
	"github.com/katalvlaran/tspgen/route"
)

// Feature kinds.
const (
	KindCity     = "city"
	KindCentroid = "centroid"
	KindRoute    = "route"
)

// FeatureCollection returns cities then centroids as Point features.
func FeatureCollection(inst *cluster.Instance) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, c := range inst.Cities {
		f := geojson.NewFeature(orb.Point{c.X, c.Y})
		f.Properties["kind"] = KindCity
		f.Properties["index"] = i
		f.Properties["centroid"] = c.Centroid
		fc.Append(f)
	}
	for i, c := range inst.Centroids {
		f := geojson.NewFeature(orb.Point{c.X, c.Y})
		f.Properties["kind"] = KindCentroid
		f.Properties["index"] = i
		fc.Append(f)
	}
	return fc
}

// CityCollection returns only the city points.
func CityCollection(inst *cluster.Instance) *geojson.FeatureCollection {
	return filterKind(FeatureCollection(inst), KindCity)
}

// CentroidCollection returns only the centroid points.
func CentroidCollection(inst *cluster.Instance) *geojson.FeatureCollection {
	return filterKind(FeatureCollection(inst), KindCentroid)
}

// RouteFeature returns the route as a LineString through the visited cities.
// The route must be valid for the instance.
func RouteFeature(inst *cluster.Instance, r route.Route) (*geojson.Feature, error) {
	if err := r.Validate(len(inst.Cities)); err != nil {
		return nil, err
	}
	ls := make(orb.LineString, len(r))
	for i, idx := range r {
		c := inst.Cities[idx]
		ls[i] = orb.Point{c.X, c.Y}
	}
	f := geojson.NewFeature(ls)
	f.Properties["kind"] = KindRoute
	f.Properties["cities"] = len(r)
	return f, nil
}

// WriteGeoJSON writes the full FeatureCollection of inst.
func WriteGeoJSON(w io.Writer, inst *cluster.Instance) error {
	raw, err := json.MarshalIndent(FeatureCollection(inst), "", "  ")
	if err != nil {
		return fmt.Errorf("codec: encode geojson: %w", err)
	}
	if _, err = w.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("codec: write geojson: %w", err)
	}
	return nil
}

func filterKind(fc *geojson.FeatureCollection, kind string) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		if f.Properties.MustString("kind", "") == kind {
			out.Append(f)
		}
	}
	return out
}

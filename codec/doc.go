// Package codec serializes generated instances.
//
// Formats:
//
//	json     native document (params, seed, cities, centroids, optional
//	         distances); the only format ReadJSON reads back
//	geojson  FeatureCollection of Point features tagged kind=city|centroid
//	text     commented coordinates followed by the distance matrix
//
// GeoJSON values come from github.com/paulmach/orb/geojson and are also used
// by the render package to embed layers in the map page.
package codec

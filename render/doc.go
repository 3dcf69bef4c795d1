// Package render turns an instance, and optionally a route through it, into a
// self-contained HTML page.
//
// The page loads Leaflet from a CDN and uses its planar CRS (L.CRS.Simple), so
// map units are instance units. Layers: cities coloured by cluster, centroids
// as dashed rings, the map square, and the route line whose popup shows the
// total distance and duration.
package render

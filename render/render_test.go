package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspgen/cluster"
	"github.com/katalvlaran/tspgen/render"
	"github.com/katalvlaran/tspgen/route"
)

func instance(t *testing.T) *cluster.Instance {
	t.Helper()
	inst, err := cluster.Generate(6, 2, 500, 5, cluster.WithSeed(3))
	require.NoError(t, err)
	return inst
}

func TestPage_CitiesOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Page(&buf, instance(t), render.Options{}))
	html := buf.String()

	require.Contains(t, html, "<title>"+render.DefaultTitle+"</title>")
	require.Contains(t, html, "leaflet.js")
	require.Contains(t, html, `"FeatureCollection"`)
	require.Contains(t, html, `"kind":"city"`)
	require.Contains(t, html, `"kind":"centroid"`)
	require.Regexp(t, `const maxWidth = \s*500\s*;`, html)
	require.NotContains(t, html, "Total distance")
	require.Equal(t, 6, strings.Count(html, `"kind":"city"`))
}

func TestPage_WithRoute(t *testing.T) {
	t.Parallel()

	inst := instance(t)
	sum, err := route.Summarize(inst.DistanceMatrix(), route.Route{0, 1, 2, 3, 4, 5}, route.DefaultSpeed, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Page(&buf, inst, render.Options{Title: "clusters & routes", Route: &sum}))
	html := buf.String()

	require.Contains(t, html, "<title>clusters &amp; routes</title>")
	require.Contains(t, html, `"LineString"`)
	require.Contains(t, html, "Total distance:</b> "+sum.DistanceText())
	require.Contains(t, html, sum.DurationText())
}

func TestPage_InvalidRoute(t *testing.T) {
	t.Parallel()

	bad := route.Summary{Route: route.Route{0, 99}}
	err := render.Page(&bytes.Buffer{}, instance(t), render.Options{Route: &bad})
	require.ErrorIs(t, err, route.ErrIndexOutOfRange)
}

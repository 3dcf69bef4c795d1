package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspgen/cluster"
	"github.com/katalvlaran/tspgen/codec"
	"github.com/katalvlaran/tspgen/internal/config"
	"github.com/katalvlaran/tspgen/route"
)

func TestGenerateThenVisualize(t *testing.T) {
	dir := t.TempDir()
	instPath := filepath.Join(dir, "instance.json")
	htmlPath := filepath.Join(dir, "map.html")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"generate", "--nb-cities", "6", "--nb-centroids", "2", "--seed", "42", "--output", instPath,
	}, &stdout, &stderr)
	require.NoError(t, err)
	require.Zero(t, stdout.Len())
	require.Contains(t, stderr.String(), `"seed":42`)
	require.Contains(t, stderr.String(), `"cluster_sizes":[3,3]`)

	f, err := os.Open(instPath)
	require.NoError(t, err)
	inst, err := codec.ReadJSON(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	require.Len(t, inst.Cities, 6)
	require.Equal(t, uint64(42), inst.Seed)

	stderr.Reset()
	err = run(context.Background(), []string{
		"visualize", "--instance", instPath, "--solution", "0 3 1 4 2 5", "--output", htmlPath,
	}, &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stderr.String(), `"route":"0 3 1 4 2 5 0"`)

	page, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	require.Contains(t, string(page), "Total distance:")
	require.Contains(t, string(page), "Total duration:")
}

func TestGenerateToStdoutIsReproducible(t *testing.T) {
	gen := func() []byte {
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"generate", "--seed", "7", "--distances"}, &stdout, &stderr)
		require.NoError(t, err)
		return stdout.Bytes()
	}

	first := gen()
	require.Equal(t, first, gen())

	var doc map[string]any
	require.NoError(t, json.Unmarshal(first, &doc))
	require.Contains(t, doc, "distances")
	require.Len(t, doc["cities"], cluster.DefaultCities)
}

func TestGenerateFormats(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"generate", "--seed", "1", "--format", "geojson"}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)
	require.Contains(t, stdout.String(), `"FeatureCollection"`)

	stdout.Reset()
	err = run(context.Background(), []string{"generate", "--seed", "1", "--format", "text", "--nb-cities", "2"}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout.String(), "c "))
}

func TestGenerateFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nb_cities: 4\nnb_centroids: 4\nseed: 3\nstd_dev: 0\n"), 0o600))

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"generate", "--config", path}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)

	inst, err := codec.ReadJSON(&stdout)
	require.NoError(t, err)
	for i, c := range inst.Cities {
		require.Equal(t, inst.Centroids[i], c.Coordinate)
	}
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	require.ErrorIs(t, run(ctx, nil, &out, &out), errUsage)
	require.ErrorIs(t, run(ctx, []string{"solve"}, &out, &out), errUsage)

	err := run(ctx, []string{"generate", "--nb-cities", "5", "--nb-centroids", "0"}, &out, &out)
	require.ErrorIs(t, err, cluster.ErrInvalidConfiguration)

	err = run(ctx, []string{"generate", "--format", "xml"}, &out, &out)
	require.ErrorIs(t, err, codec.ErrUnknownFormat)

	err = run(ctx, []string{"visualize"}, &out, &out)
	require.ErrorIs(t, err, config.ErrConfig)

	instPath := filepath.Join(t.TempDir(), "instance.json")
	require.NoError(t, run(ctx, []string{"generate", "--seed", "5", "--nb-cities", "3", "--output", instPath}, &out, &out))

	err = run(ctx, []string{"visualize", "--instance", instPath, "--solution", "0 1 9"}, &out, &out)
	require.ErrorIs(t, err, route.ErrIndexOutOfRange)

	err = run(ctx, []string{"visualize", "--instance", instPath, "--solution", "0 1 1"}, &out, &out)
	require.ErrorIs(t, err, route.ErrRepeatedCity)

	err = run(ctx, []string{"visualize", "--instance", instPath, "--solution", "0 1 2", "--speed", "0"}, &out, &out)
	require.ErrorIs(t, err, route.ErrBadSpeed)
}

func TestHelpersLogThroughContext(t *testing.T) {
	var stderr bytes.Buffer
	err := run(context.Background(), []string{"generate", "--seed", "2", "--log-level", "debug"}, &bytes.Buffer{}, &stderr)
	require.NoError(t, err)
	require.Contains(t, stderr.String(), `"message":"writing output"`)
	require.Contains(t, stderr.String(), `"command":"generate"`)

	var quiet bytes.Buffer
	err = run(context.Background(), []string{"generate", "--seed", "2"}, &bytes.Buffer{}, &quiet)
	require.NoError(t, err)
	require.NotContains(t, quiet.String(), "writing output")
}

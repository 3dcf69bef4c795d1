package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tspgen/cluster"
)

// stepSource is a scripted RandomSource: Uniform returns low + step·(call#),
// Gaussian returns mean + stdDev, IntN returns call# mod n. It records the
// draw kinds so tests can assert the documented draw order.
type stepSource struct {
	calls int
	log   []string
}

func (s *stepSource) Uniform(low, high float64) float64 {
	s.calls++
	s.log = append(s.log, "u")
	return low + float64(s.calls)
}

func (s *stepSource) Gaussian(mean, stdDev float64) float64 {
	s.calls++
	s.log = append(s.log, "g")
	return mean + stdDev
}

func (s *stepSource) IntN(n int) int {
	s.calls++
	s.log = append(s.log, "i")
	return s.calls % n
}

func TestPlaceCentroids_DrawOrder(t *testing.T) {
	t.Parallel()

	src := &stepSource{}
	got := cluster.PlaceCentroids(3, 100, src)
	require.Equal(t, []cluster.Coordinate{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, got)
	require.Equal(t, []string{"u", "u", "u", "u", "u", "u"}, src.log)
}

func TestPlaceCentroids_Empty(t *testing.T) {
	t.Parallel()

	src := &stepSource{}
	require.Empty(t, cluster.PlaceCentroids(0, 100, src))
	require.NotNil(t, cluster.PlaceCentroids(-2, 100, src))
	require.Zero(t, src.calls)
}

func TestSampleCities_RoundRobinOffsets(t *testing.T) {
	t.Parallel()

	centroids := []cluster.Coordinate{{X: 10, Y: 20}, {X: 100, Y: 200}}
	src := &stepSource{}
	got, err := cluster.SampleCities(3, centroids, 2, cluster.RoundRobin, src)
	require.NoError(t, err)
	require.Equal(t, []cluster.City{
		{Coordinate: cluster.Coordinate{X: 12, Y: 22}, Centroid: 0},
		{Coordinate: cluster.Coordinate{X: 102, Y: 202}, Centroid: 1},
		{Coordinate: cluster.Coordinate{X: 12, Y: 22}, Centroid: 0},
	}, got)
	require.Equal(t, []string{"g", "g", "g", "g", "g", "g"}, src.log)
}

func TestSampleCities_UniformDrawsIndexFirst(t *testing.T) {
	t.Parallel()

	centroids := []cluster.Coordinate{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 90, Y: 90}}
	src := &stepSource{}
	got, err := cluster.SampleCities(2, centroids, 0, cluster.UniformRandom, src)
	require.NoError(t, err)
	require.Equal(t, []string{"i", "g", "g", "i", "g", "g"}, src.log)
	// calls 1 and 4: 1 mod 3 = 1, 4 mod 3 = 1.
	require.Equal(t, 1, got[0].Centroid)
	require.Equal(t, 1, got[1].Centroid)
	require.Equal(t, centroids[1], got[0].Coordinate)
}

func TestSampleCities_Blocked(t *testing.T) {
	t.Parallel()

	centroids := []cluster.Coordinate{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	got, err := cluster.SampleCities(6, centroids, 0, cluster.Blocked, &stepSource{})
	require.NoError(t, err)
	anchors := make([]int, len(got))
	for i, c := range got {
		anchors[i] = c.Centroid
	}
	require.Equal(t, []int{0, 0, 1, 1, 2, 3}, anchors)
}

func TestSampleCities_Errors(t *testing.T) {
	t.Parallel()

	_, err := cluster.SampleCities(1, nil, 1, cluster.RoundRobin, &stepSource{})
	require.ErrorIs(t, err, cluster.ErrInvalidConfiguration)

	_, err = cluster.SampleCities(1, []cluster.Coordinate{{}}, 1, cluster.Assignment(42), &stepSource{})
	require.ErrorIs(t, err, cluster.ErrInvalidConfiguration)

	got, err := cluster.SampleCities(0, nil, 1, cluster.RoundRobin, &stepSource{})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestAssemble_ClampDoesNotAlias(t *testing.T) {
	t.Parallel()

	cities := []cluster.City{
		{Coordinate: cluster.Coordinate{X: -5, Y: 50}},
		{Coordinate: cluster.Coordinate{X: 150, Y: 100}},
	}
	p := cluster.DefaultParams()
	p.MaxWidth = 100
	p.Boundary = cluster.Clamp

	inst := cluster.Assemble(cities, nil, p, 9)
	require.Equal(t, 0.0, inst.Cities[0].X)
	require.Equal(t, 50.0, inst.Cities[0].Y)
	require.Less(t, inst.Cities[1].X, 100.0)
	require.Less(t, inst.Cities[1].Y, 100.0)
	require.InDelta(t, 100.0, inst.Cities[1].X, 1e-9)
	require.Equal(t, -5.0, cities[0].X, "input must not be modified")
	require.Equal(t, uint64(9), inst.Seed)
}

func TestDistanceMatrix(t *testing.T) {
	t.Parallel()

	inst := cluster.Assemble([]cluster.City{
		{Coordinate: cluster.Coordinate{X: 0, Y: 0}},
		{Coordinate: cluster.Coordinate{X: 3, Y: 4}},
		{Coordinate: cluster.Coordinate{X: 6, Y: 8}},
	}, []cluster.Coordinate{{X: 3, Y: 4}}, cluster.DefaultParams(), 0)

	d := inst.DistanceMatrix()
	want := mat.NewDense(3, 3, []float64{
		0, 5, 10,
		5, 0, 5,
		10, 5, 0,
	})
	require.True(t, mat.EqualApprox(want, d, 1e-12), "got %v", mat.Formatted(d))
	require.True(t, mat.Equal(d, d.T()))
}

func TestPositions(t *testing.T) {
	t.Parallel()

	inst := cluster.Assemble([]cluster.City{
		{Coordinate: cluster.Coordinate{X: 1, Y: 2}, Centroid: 0},
		{Coordinate: cluster.Coordinate{X: 3, Y: 4}, Centroid: 0},
	}, []cluster.Coordinate{{}}, cluster.DefaultParams(), 0)
	require.Equal(t, []cluster.Coordinate{{X: 1, Y: 2}, {X: 3, Y: 4}}, inst.Positions())
}

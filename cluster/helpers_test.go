package cluster

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/geo"
	"github.com/arloliu/geocluster/geohash"
)

const tolerance = 1e-9

// buildCluster creates a cluster from points that must share a bucket at bits.
func buildCluster(t *testing.T, bits int, alg format.CenteringAlgorithm, points ...geo.Point) *Cluster {
	t.Helper()
	require.NotEmpty(t, points)

	c, err := New(points[0], geohash.Encode(points[0], bits), bits, alg)
	require.NoError(t, err)
	for _, p := range points[1:] {
		require.NoError(t, c.Add(p))
	}

	return c
}

// pointsNear returns n random points within a small square around (lat, lon).
func pointsNear(lat, lon float64, n int, seed int64) []geo.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]geo.Point, n)
	for i := range points {
		points[i] = geo.NewPoint(lat+rng.Float64()*0.01, lon+rng.Float64()*0.01)
	}

	return points
}

func requirePointInDelta(t *testing.T, want, got geo.Point) {
	t.Helper()
	require.InDelta(t, want.Lat, got.Lat, tolerance, "latitude")
	require.InDelta(t, want.Lon, got.Lon, tolerance, "longitude")
}

func directMean(points []geo.Point) geo.Point {
	var lat, lon float64
	for _, p := range points {
		lat += p.Lat
		lon += p.Lon
	}
	n := float64(len(points))

	return geo.NewPoint(lat/n, lon/n)
}

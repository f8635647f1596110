package cluster

import (
	"slices"

	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/geo"
	"github.com/arloliu/geocluster/internal/pool"
)

// Point is an alias so callers of this package rarely need to import geo.
type Point = geo.Point

// centroid is the centering state of a cluster. The two implementations make
// the cost difference explicit: meanCentroid is O(1) per add and merge, while
// medianCentroid retains every point and recomputes the center on each read.
type centroid interface {
	algorithm() format.CenteringAlgorithm
	center() geo.Point
	// add absorbs p into a cluster that held n points before the call.
	add(p geo.Point, n int)
	// merge returns a new centroid for the union of two clusters of n and m points.
	merge(other centroid, n, m int) centroid
	clone() centroid
}

func newCentroid(alg format.CenteringAlgorithm, p geo.Point) centroid {
	if alg == format.Median {
		return &medianCentroid{points: []geo.Point{p}}
	}

	return &meanCentroid{c: p}
}

type meanCentroid struct {
	c geo.Point
}

func (m *meanCentroid) algorithm() format.CenteringAlgorithm { return format.ArithmeticMean }

func (m *meanCentroid) center() geo.Point { return m.c }

func (m *meanCentroid) add(p geo.Point, n int) {
	m.c = weightedMean(m.c, n, p, 1)
}

func (m *meanCentroid) merge(other centroid, n, k int) centroid {
	return &meanCentroid{c: weightedMean(m.c, n, other.center(), k)}
}

func (m *meanCentroid) clone() centroid {
	return &meanCentroid{c: m.c}
}

// medianCentroid keeps the raw points of the cluster. A detached median has
// lost its points on the wire and only knows the center it was sent with;
// further adds and merges degrade to count-weighted means of centers.
type medianCentroid struct {
	points   []geo.Point
	detached bool
	approx   geo.Point
}

func (m *medianCentroid) algorithm() format.CenteringAlgorithm { return format.Median }

func (m *medianCentroid) center() geo.Point {
	if m.detached {
		return m.approx
	}

	return perAxisMedian(m.points)
}

func (m *medianCentroid) add(p geo.Point, n int) {
	if m.detached {
		m.approx = weightedMean(m.approx, n, p, 1)
		return
	}
	m.points = append(m.points, p)
}

func (m *medianCentroid) merge(other centroid, n, k int) centroid {
	o, ok := other.(*medianCentroid)
	if !ok || m.detached || o.detached {
		return &medianCentroid{
			detached: true,
			approx:   weightedMean(m.center(), n, other.center(), k),
		}
	}

	points := make([]geo.Point, 0, len(m.points)+len(o.points))
	points = append(points, m.points...)
	points = append(points, o.points...)

	return &medianCentroid{points: points}
}

func (m *medianCentroid) clone() centroid {
	return &medianCentroid{
		points:   slices.Clone(m.points),
		detached: m.detached,
		approx:   m.approx,
	}
}

func weightedMean(a geo.Point, n int, b geo.Point, k int) geo.Point {
	wa, wb := float64(n), float64(k)
	total := wa + wb

	return geo.Point{
		Lat: (a.Lat*wa + b.Lat*wb) / total,
		Lon: (a.Lon*wa + b.Lon*wb) / total,
	}
}

// perAxisMedian returns the latitude median paired with the longitude median.
// For an even count the upper of the two middle values is used. This is not a
// geometric median: the result need not be one of the input points.
func perAxisMedian(points []geo.Point) geo.Point {
	if len(points) == 0 {
		return geo.Point{}
	}

	values, cleanup := pool.GetFloat64Slice(len(points))
	defer cleanup()

	for i, p := range points {
		values[i] = p.Lat
	}
	slices.Sort(values)
	lat := values[len(values)/2]

	for i, p := range points {
		values[i] = p.Lon
	}
	slices.Sort(values)
	lon := values[len(values)/2]

	return geo.Point{Lat: lat, Lon: lon}
}

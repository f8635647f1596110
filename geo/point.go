// Package geo defines the latitude/longitude value types shared by the
// geohash codec and the cluster accumulator.
package geo

import (
	"fmt"
	"math"

	"github.com/arloliu/geocluster/errs"
)

// Coordinate limits in degrees.
const (
	MinLat = -90.0
	MaxLat = 90.0
	MinLon = -180.0
	MaxLon = 180.0
)

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// NewPoint creates a point from latitude and longitude.
func NewPoint(lat, lon float64) Point {
	return Point{Lat: lat, Lon: lon}
}

// Validate reports an error when either coordinate is NaN or out of range.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || p.Lat < MinLat || p.Lat > MaxLat {
		return fmt.Errorf("%w: latitude %v", errs.ErrInvalidCoordinate, p.Lat)
	}
	if math.IsNaN(p.Lon) || p.Lon < MinLon || p.Lon > MaxLon {
		return fmt.Errorf("%w: longitude %v", errs.ErrInvalidCoordinate, p.Lon)
	}

	return nil
}

func (p Point) String() string {
	return fmt.Sprintf("[%g, %g]", p.Lat, p.Lon)
}

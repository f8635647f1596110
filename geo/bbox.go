package geo

import "math"

// BoundingBox is the minimal axis-aligned rectangle covering a set of points.
//
// Boxes are values: ExtendPoint and Extend return the widened box and leave the
// receiver untouched. Longitude wraparound is not handled, so a box spanning the
// antimeridian covers the long way around.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// NewBoundingBox returns the degenerate box covering p only.
func NewBoundingBox(p Point) BoundingBox {
	return BoundingBox{MinLat: p.Lat, MaxLat: p.Lat, MinLon: p.Lon, MaxLon: p.Lon}
}

// NewBoundingBoxFromCorners returns the box spanned by two corner points.
func NewBoundingBoxFromCorners(a, b Point) BoundingBox {
	return NewBoundingBox(a).ExtendPoint(b)
}

// ExtendPoint returns the box widened to include p.
func (b BoundingBox) ExtendPoint(p Point) BoundingBox {
	return BoundingBox{
		MinLat: math.Min(b.MinLat, p.Lat),
		MaxLat: math.Max(b.MaxLat, p.Lat),
		MinLon: math.Min(b.MinLon, p.Lon),
		MaxLon: math.Max(b.MaxLon, p.Lon),
	}
}

// Extend returns the union of b and other.
func (b BoundingBox) Extend(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinLat: math.Min(b.MinLat, other.MinLat),
		MaxLat: math.Max(b.MaxLat, other.MaxLat),
		MinLon: math.Min(b.MinLon, other.MinLon),
		MaxLon: math.Max(b.MaxLon, other.MaxLon),
	}
}

// Contains reports whether p lies inside b, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// TopLeft returns the north-west corner.
func (b BoundingBox) TopLeft() Point {
	return Point{Lat: b.MaxLat, Lon: b.MinLon}
}

// BottomRight returns the south-east corner.
func (b BoundingBox) BottomRight() Point {
	return Point{Lat: b.MinLat, Lon: b.MaxLon}
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point {
	return Point{Lat: (b.MinLat + b.MaxLat) / 2, Lon: (b.MinLon + b.MaxLon) / 2}
}

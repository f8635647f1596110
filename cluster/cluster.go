package cluster

import (
	"fmt"
	"slices"

	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/geo"
	"github.com/arloliu/geocluster/geohash"
)

// Cluster is the aggregate of all points that share one geocode bucket.
//
// Every point absorbed by a cluster encodes to Geocode() at Bits(). The
// cluster tracks its size, bounding box and centroid; a singleton may also
// carry the Identity of the record it came from.
//
// Note: Cluster is NOT thread-safe. Add mutates the receiver; Merge does not.
type Cluster struct {
	size     int
	geocode  uint64
	bits     int
	bounds   geo.BoundingBox
	identity *Identity
	centroid centroid
}

// New creates a singleton cluster holding p.
//
// Parameters:
//   - p: The first point of the cluster
//   - geocode: Bucket key, must equal geohash.Encode(p, bits)
//   - bits: Geocode bit length in [0, geohash.MaxPrefixLength]
//   - alg: Centering algorithm used for the lifetime of the cluster
//
// Returns:
//   - *Cluster: New cluster of size 1 without identity
//   - error: ErrInvalidBits, ErrInvalidCenteringAlgorithm or ErrPrecisionMismatch
func New(p geo.Point, geocode uint64, bits int, alg format.CenteringAlgorithm) (*Cluster, error) {
	return NewWithIdentity(p, geocode, bits, alg, nil)
}

// NewWithIdentity is like New but attaches the identity of the originating record.
func NewWithIdentity(p geo.Point, geocode uint64, bits int, alg format.CenteringAlgorithm, id *Identity) (*Cluster, error) {
	if err := geohash.ValidateBits(bits); err != nil {
		return nil, err
	}
	if !alg.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCenteringAlgorithm, alg)
	}
	if got := geohash.Encode(p, bits); got != geocode {
		return nil, fmt.Errorf("%w: point %v encodes to %d at %d bits, cluster is %d",
			errs.ErrPrecisionMismatch, p, got, bits, geocode)
	}

	return newSingleton(p, geocode, bits, alg, id), nil
}

func newSingleton(p geo.Point, geocode uint64, bits int, alg format.CenteringAlgorithm, id *Identity) *Cluster {
	return &Cluster{
		size:     1,
		geocode:  geocode,
		bits:     bits,
		bounds:   geo.NewBoundingBox(p),
		identity: id,
		centroid: newCentroid(alg, p),
	}
}

// Add absorbs p into the cluster.
//
// The size grows by one, the bounds are extended, the centroid is updated and
// any identity is dropped. Under the median algorithm p is retained.
//
// Returns ErrPrecisionMismatch if p does not belong to this geocode bucket;
// the cluster is left unchanged in that case.
func (c *Cluster) Add(p geo.Point) error {
	if got := geohash.Encode(p, c.bits); got != c.geocode {
		return fmt.Errorf("%w: point %v encodes to %d at %d bits, cluster is %d",
			errs.ErrPrecisionMismatch, p, got, c.bits, c.geocode)
	}

	c.centroid.add(p, c.size)
	c.size++
	c.bounds = c.bounds.ExtendPoint(p)
	c.identity = nil

	return nil
}

// Size returns the number of absorbed points.
func (c *Cluster) Size() int {
	return c.size
}

// Center returns the current centroid.
//
// For the arithmetic mean this is O(1). For the median it sorts the retained
// coordinates on every call, O(n log n); the result is not cached.
func (c *Cluster) Center() geo.Point {
	return c.centroid.center()
}

// Bounds returns the bounding box of all absorbed points.
func (c *Cluster) Bounds() geo.BoundingBox {
	return c.bounds
}

// Geocode returns the bucket key.
func (c *Cluster) Geocode() uint64 {
	return c.geocode
}

// Bits returns the bit length of the geocode.
func (c *Cluster) Bits() int {
	return c.bits
}

// Identity returns the originating record of a singleton, or nil.
func (c *Cluster) Identity() *Identity {
	return c.identity
}

// Algorithm returns the centering algorithm.
func (c *Cluster) Algorithm() format.CenteringAlgorithm {
	return c.centroid.algorithm()
}

// Cell returns the rectangle of the cluster's geocode cell.
func (c *Cluster) Cell() geo.BoundingBox {
	return geohash.CellBounds(c.geocode, c.bits)
}

// RawPoints returns a copy of the retained points of a median cluster.
// It returns nil for mean clusters and for median clusters decoded from the
// wire with more than one point.
func (c *Cluster) RawPoints() []geo.Point {
	m, ok := c.centroid.(*medianCentroid)
	if !ok || m.detached {
		return nil
	}

	return slices.Clone(m.points)
}

// Clone returns a deep copy of the cluster.
func (c *Cluster) Clone() *Cluster {
	out := *c
	out.centroid = c.centroid.clone()
	if c.identity != nil {
		id := *c.identity
		out.identity = &id
	}

	return &out
}

// Equal reports whether two clusters have the same size, key, algorithm,
// bounds, center and identity.
func (c *Cluster) Equal(other *Cluster) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.size == other.size &&
		c.geocode == other.geocode &&
		c.bits == other.bits &&
		c.Algorithm() == other.Algorithm() &&
		c.bounds == other.bounds &&
		c.Center() == other.Center() &&
		c.identity.Equal(other.identity)
}

func (c *Cluster) String() string {
	return fmt.Sprintf("%v %d (%d)", c.Center(), c.geocode, c.size)
}

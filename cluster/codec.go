package cluster

import (
	"fmt"
	"math"

	"github.com/arloliu/geocluster/encoding"
	"github.com/arloliu/geocluster/endian"
	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/geo"
	"github.com/arloliu/geocluster/geohash"
)

// maxWireSize bounds the decoded cluster size to a signed 32-bit count.
const maxWireSize = math.MaxInt32

// wireTail is the size-dependent end of a cluster on the wire.
type wireTail interface {
	encode(w *encoding.Writer) error
}

// singletonTail follows a cluster of size 1: a presence flag and the identity.
// Bounds are not sent; they equal the center.
type singletonTail struct {
	identity *Identity
}

// aggregateTail follows a cluster of size > 1: the bounding box.
type aggregateTail struct {
	bounds geo.BoundingBox
}

func (t singletonTail) encode(w *encoding.Writer) error {
	w.WriteBool(t.identity != nil)
	if t.identity == nil {
		return nil
	}
	if err := w.WriteString(t.identity.Type); err != nil {
		return err
	}

	return w.WriteString(t.identity.ID)
}

func (t aggregateTail) encode(w *encoding.Writer) error {
	w.WriteFloat64(t.bounds.MinLat)
	w.WriteFloat64(t.bounds.MaxLat)
	w.WriteFloat64(t.bounds.MinLon)
	w.WriteFloat64(t.bounds.MaxLon)

	return nil
}

func (c *Cluster) tail() wireTail {
	if c.size > 1 {
		return aggregateTail{bounds: c.bounds}
	}

	return singletonTail{identity: c.identity}
}

// Encode writes the cluster to w.
//
// Layout: size (uvarint), center lat/lon (float64), geocode (uint64),
// bits (uvarint), algorithm tag (string), then the bounding box when size > 1
// or an identity flag plus optional identity when size == 1. Median clusters
// send their computed center; raw points are never sent.
func (c *Cluster) Encode(w *encoding.Writer) error {
	if c.size == 1 && c.identity != nil {
		if err := encoding.CheckString(c.identity.Type); err != nil {
			return fmt.Errorf("identity type: %w", err)
		}
		if err := encoding.CheckString(c.identity.ID); err != nil {
			return fmt.Errorf("identity id: %w", err)
		}
	}

	center := c.Center()

	w.WriteUvarint(uint64(c.size)) //nolint:gosec
	w.WriteFloat64(center.Lat)
	w.WriteFloat64(center.Lon)
	w.WriteUint64(c.geocode)
	w.WriteUvarint(uint64(c.bits)) //nolint:gosec
	if err := w.WriteString(c.Algorithm().String()); err != nil {
		return err
	}

	return c.tail().encode(w)
}

// Decode reads one cluster from r.
//
// A decoded singleton has bounds (center, center); a decoded median singleton
// retains its center as its only raw point. A decoded median cluster of size > 1
// has no raw points: its center is the transmitted one and later merges combine
// centers by weighted mean.
//
// Any truncated or inconsistent field yields an error wrapping ErrMalformedWireData.
func Decode(r *encoding.Reader) (*Cluster, error) {
	size, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if size == 0 || size > maxWireSize {
		return nil, fmt.Errorf("%w: cluster size %d", errs.ErrMalformedWireData, size)
	}

	center, err := readPoint(r)
	if err != nil {
		return nil, err
	}

	geocode, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}

	bits, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if bits > geohash.MaxPrefixLength || !geohash.IsValid(geocode, int(bits)) {
		return nil, fmt.Errorf("%w: geocode %d does not fit %d bits", errs.ErrMalformedWireData, geocode, bits)
	}

	tag, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	alg, err := format.ParseCenteringAlgorithm(tag)
	if err != nil || tag != alg.String() {
		return nil, fmt.Errorf("%w: unknown centering algorithm %q", errs.ErrMalformedWireData, tag)
	}

	tail, err := readTail(r, size)
	if err != nil {
		return nil, err
	}

	c := &Cluster{
		size:    int(size),
		geocode: geocode,
		bits:    int(bits),
	}

	switch t := tail.(type) {
	case singletonTail:
		c.bounds = geo.NewBoundingBox(center)
		c.identity = t.identity
		c.centroid = newCentroid(alg, center)
	case aggregateTail:
		c.bounds = t.bounds
		if alg == format.Median {
			c.centroid = &medianCentroid{detached: true, approx: center}
		} else {
			c.centroid = &meanCentroid{c: center}
		}
	}

	return c, nil
}

func readTail(r *encoding.Reader, size uint64) (wireTail, error) {
	if size > 1 {
		minLat, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		maxLat, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		minLon, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		maxLon, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		if !(minLat <= maxLat) || !(minLon <= maxLon) {
			return nil, fmt.Errorf("%w: inverted bounding box", errs.ErrMalformedWireData)
		}

		return aggregateTail{bounds: geo.BoundingBox{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}}, nil
	}

	hasIdentity, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !hasIdentity {
		return singletonTail{}, nil
	}

	typ, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	id, err := r.ReadString()
	if err != nil {
		return nil, err
	}

	return singletonTail{identity: NewIdentity(typ, id)}, nil
}

func readPoint(r *encoding.Reader) (geo.Point, error) {
	lat, err := r.ReadFloat64()
	if err != nil {
		return geo.Point{}, err
	}
	lon, err := r.ReadFloat64()
	if err != nil {
		return geo.Point{}, err
	}

	p := geo.NewPoint(lat, lon)
	if err := p.Validate(); err != nil {
		return geo.Point{}, fmt.Errorf("%w: %w", errs.ErrMalformedWireData, err)
	}

	return p, nil
}

// MarshalBinary encodes the cluster in little-endian byte order.
func (c *Cluster) MarshalBinary() ([]byte, error) {
	w := encoding.NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	if err := c.Encode(w); err != nil {
		return nil, err
	}

	return w.Clone(), nil
}

// UnmarshalBinary decodes a cluster written by MarshalBinary. Trailing bytes
// are rejected.
func (c *Cluster) UnmarshalBinary(data []byte) error {
	r := encoding.NewReader(data, endian.GetLittleEndianEngine())
	decoded, err := Decode(r)
	if err != nil {
		return err
	}
	if r.Remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", errs.ErrMalformedWireData, r.Remaining())
	}
	*c = *decoded

	return nil
}

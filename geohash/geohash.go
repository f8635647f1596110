// Package geohash implements the binary geocode used as the cluster bucket key.
//
// A geocode is produced by bisecting the longitude and latitude ranges in turn,
// starting with longitude, and emitting one bit per bisection: 1 when the
// coordinate falls in the upper half of the current range, 0 otherwise. The
// first bisection ends up in the most significant of the `bits` low-order bits.
//
// Because every level only refines the previous one, dropping trailing bits
// yields the geocode of the coarser level:
//
//	geohash.Encode(p, 40) >> 10 == geohash.Encode(p, 30)
//
// A geocode is meaningless without its bit length, so callers always carry
// the pair around together.
package geohash

import (
	"fmt"

	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/geo"
)

// MaxPrefixLength is the maximum number of bisection levels. Two interleaved
// axes fit 31 levels each into a 64-bit word with room to spare.
const MaxPrefixLength = 62

// ValidateBits reports errs.ErrInvalidBits when bits is outside [0, MaxPrefixLength].
func ValidateBits(bits int) error {
	if bits < 0 || bits > MaxPrefixLength {
		return fmt.Errorf("%w: %d not in [0, %d]", errs.ErrInvalidBits, bits, MaxPrefixLength)
	}

	return nil
}

// Encode returns the geocode of p at the given bit length.
// Bits outside [0, MaxPrefixLength] are clamped; bits == 0 maps every point to 0.
func Encode(p geo.Point, bits int) uint64 {
	bits = clamp(bits)

	minLat, maxLat := geo.MinLat, geo.MaxLat
	minLon, maxLon := geo.MinLon, geo.MaxLon

	var code uint64
	for i := 0; i < bits; i++ {
		code <<= 1
		if i%2 == 0 {
			mid := (minLon + maxLon) / 2
			if p.Lon >= mid {
				code |= 1
				minLon = mid
			} else {
				maxLon = mid
			}
		} else {
			mid := (minLat + maxLat) / 2
			if p.Lat >= mid {
				code |= 1
				minLat = mid
			} else {
				maxLat = mid
			}
		}
	}

	return code
}

// Truncate drops the trailing bits of a geocode computed at length from, giving
// the geocode of the same point at length to. It panics if to > from.
func Truncate(code uint64, from, to int) uint64 {
	if to > from {
		panic(fmt.Sprintf("geohash: cannot truncate %d bits to %d", from, to))
	}

	return code >> uint(from-to) //nolint:gosec
}

// IsValid reports whether code can be produced at the given bit length.
func IsValid(code uint64, bits int) bool {
	if ValidateBits(bits) != nil {
		return false
	}

	return code>>uint(bits) == 0 //nolint:gosec
}

// CellBounds returns the rectangle covered by the geocode cell.
func CellBounds(code uint64, bits int) geo.BoundingBox {
	bits = clamp(bits)

	minLat, maxLat := geo.MinLat, geo.MaxLat
	minLon, maxLon := geo.MinLon, geo.MaxLon

	for i := 0; i < bits; i++ {
		bit := (code >> uint(bits-1-i)) & 1 //nolint:gosec
		if i%2 == 0 {
			mid := (minLon + maxLon) / 2
			if bit == 1 {
				minLon = mid
			} else {
				maxLon = mid
			}
		} else {
			mid := (minLat + maxLat) / 2
			if bit == 1 {
				minLat = mid
			} else {
				maxLat = mid
			}
		}
	}

	return geo.BoundingBox{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}
}

func clamp(bits int) int {
	switch {
	case bits < 0:
		return 0
	case bits > MaxPrefixLength:
		return MaxPrefixLength
	default:
		return bits
	}
}

package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/geocluster/endian"
	"github.com/arloliu/geocluster/errs"
)

const binaryMaxVarintLen = 10

// Reader consumes primitive wire fields written by Writer.
//
// Every read that runs past the end of the data, or meets an overlong varint
// or string, returns an error wrapping errs.ErrMalformedWireData.
type Reader struct {
	data   []byte
	off    int
	engine endian.EndianEngine
}

// NewReader creates a reader over data using the given byte order.
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, engine: engine}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// ReadUvarint reads an unsigned varint.
func (r *Reader) ReadUvarint() (uint64, error) {
	var v uint64
	var shift uint
	for i := 0; i < binaryMaxVarintLen; i++ {
		if r.off >= len(r.data) {
			return 0, fmt.Errorf("%w: truncated varint", errs.ErrMalformedWireData)
		}
		b := r.data[r.off]
		r.off++

		if i == binaryMaxVarintLen-1 && b > 1 {
			return 0, fmt.Errorf("%w: varint overflows 64 bits", errs.ErrMalformedWireData)
		}
		v |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return v, nil
		}
		shift += 7
	}

	return 0, fmt.Errorf("%w: varint too long", errs.ErrMalformedWireData)
}

// ReadUint64 reads 8 fixed bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, fmt.Errorf("%w: need 8 bytes, have %d", errs.ErrMalformedWireData, r.Remaining())
	}
	v := r.engine.Uint64(r.data[r.off : r.off+8])
	r.off += 8

	return v, nil
}

// ReadFloat64 reads an IEEE 754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	bits, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// ReadBool reads a 0/1 byte. Any other value is malformed.
func (r *Reader) ReadBool() (bool, error) {
	if r.Remaining() < 1 {
		return false, fmt.Errorf("%w: truncated bool", errs.ErrMalformedWireData)
	}
	b := r.data[r.off]
	r.off++

	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: invalid bool byte 0x%02x", errs.ErrMalformedWireData, b)
	}
}

// ReadString reads a length-prefixed string.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return "", err
	}
	if n > MaxStringLength {
		return "", fmt.Errorf("%w: string length %d exceeds maximum %d", errs.ErrMalformedWireData, n, MaxStringLength)
	}
	if uint64(r.Remaining()) < n {
		return "", fmt.Errorf("%w: string length %d exceeds remaining %d bytes", errs.ErrMalformedWireData, n, r.Remaining())
	}

	s := string(r.data[r.off : r.off+int(n)])
	r.off += int(n)

	return s, nil
}

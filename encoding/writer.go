package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/geocluster/endian"
	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/internal/pool"
)

// MaxStringLength is the maximum byte length of a string field.
const MaxStringLength = math.MaxUint16

// Writer appends primitive wire fields to a pooled byte buffer.
//
// Field encodings:
//   - uvarint: 7 bits per byte, least significant group first, MSB set on all but the last byte
//   - uint64 / float64: 8 bytes in the engine's byte order
//   - bool: 1 byte, 0 or 1
//   - string: uvarint byte length followed by the UTF-8 bytes
//
// Note: The Writer is NOT thread-safe.
type Writer struct {
	buf     *pool.ByteBuffer
	engine  endian.EndianEngine
	release func(*pool.ByteBuffer)
}

// NewWriter creates a writer using the given byte order for fixed-width fields.
// Its buffer is sized for a handful of clusters.
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		engine:  engine,
		buf:     pool.GetWireBuffer(),
		release: pool.PutWireBuffer,
	}
}

// NewSetWriter creates a writer whose buffer is sized for a whole cluster set.
func NewSetWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		engine:  engine,
		buf:     pool.GetSetBuffer(),
		release: pool.PutSetBuffer,
	}
}

// Engine returns the writer's byte order.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// WriteUvarint appends v as an unsigned varint.
func (w *Writer) WriteUvarint(v uint64) {
	w.buf.Grow(binaryMaxVarintLen)
	for v >= 0x80 {
		w.buf.B = append(w.buf.B, byte(v)|0x80)
		v >>= 7
	}
	w.buf.B = append(w.buf.B, byte(v))
}

// WriteUint64 appends v as 8 fixed bytes.
func (w *Writer) WriteUint64(v uint64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

// WriteFloat64 appends the IEEE 754 bits of v as 8 fixed bytes.
func (w *Writer) WriteFloat64(v float64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(v))
}

// WriteBool appends a single 0/1 byte.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.B = append(w.buf.B, 1)
	} else {
		w.buf.B = append(w.buf.B, 0)
	}
}

// WriteString appends a length-prefixed string.
//
// Returns ErrStringTooLong if the string is longer than MaxStringLength bytes.
func (w *Writer) WriteString(s string) error {
	if err := CheckString(s); err != nil {
		return err
	}

	w.WriteUvarint(uint64(len(s)))
	w.buf.Grow(len(s))
	w.buf.B = append(w.buf.B, s...)

	return nil
}

// CheckString reports whether s fits in a string field.
func CheckString(s string) error {
	if len(s) > MaxStringLength {
		return fmt.Errorf("%w: length %d exceeds maximum %d", errs.ErrStringTooLong, len(s), MaxStringLength)
	}

	return nil
}

// Truncate discards everything written after the first n bytes. It is used
// to roll back a partially written record.
func (w *Writer) Truncate(n int) {
	w.buf.Truncate(n)
}

// Bytes returns the encoded data. The slice shares memory with the writer
// and is invalidated by Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Clone returns a copy of the encoded data that outlives Release.
func (w *Writer) Clone() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())

	return out
}

// Release returns the buffer to the pool. The writer must not be used afterwards.
func (w *Writer) Release() {
	if w.buf != nil {
		w.release(w.buf)
		w.buf = nil
	}
}

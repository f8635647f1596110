// Package encoding provides the primitive stream codec that cluster wire data
// is built from.
//
// A Writer appends fields to a pooled buffer and a Reader consumes them in the
// same order. The field set mirrors what a cluster needs on the wire:
//
//	Value            Encoding
//	uvarint          7-bit groups, low group first, MSB = continuation (1-10 bytes)
//	uint64/float64   8 bytes, byte order chosen by the EndianEngine
//	bool             1 byte, 0x00 or 0x01
//	string           uvarint length + UTF-8 bytes (max 65535 bytes)
//
// Varint layout:
//
//	Value 0-127:     0xxxxxxx                    (1 byte)
//	Value 128-16383: 1xxxxxxx 0xxxxxxx           (2 bytes)
//	Value 16384+:    1xxxxxxx 1xxxxxxx 0xxxxxxx  (3+ bytes)
//
// # Example
//
//	w := encoding.NewWriter(endian.GetLittleEndianEngine())
//	defer w.Release()
//	w.WriteUvarint(3)
//	w.WriteFloat64(52.37)
//	_ = w.WriteString("MEDIAN")
//
//	r := encoding.NewReader(w.Bytes(), endian.GetLittleEndianEngine())
//	size, _ := r.ReadUvarint()
//
// Decoding never returns partial values: a truncated buffer or a corrupt field
// yields an error wrapping errs.ErrMalformedWireData.
//
// # Thread Safety
//
// Writers and Readers are not thread-safe. Use one per goroutine.
package encoding

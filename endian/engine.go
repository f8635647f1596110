// Package endian provides byte order utilities for the geocluster wire formats.
//
// This package combines the ByteOrder and AppendByteOrder interfaces of
// encoding/binary into a single EndianEngine, so stream writers can append
// fixed-width fields without intermediate buffers and stream readers can
// decode them with the same value.
//
// # Basic Usage
//
// Little-endian is the default byte order for clusters and cluster sets:
//
//	engine := endian.GetLittleEndianEngine()
//	w := encoding.NewWriter(engine)
//
// Use the big-endian engine when the consumer expects network byte order:
//
//	w := encoding.NewWriter(endian.GetBigEndianEngine())
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy this interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. A little-endian host stores the low byte (0x00) first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNative reports whether engine matches the host byte order.
func IsNative(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// IsBigEndian reports whether engine is the big-endian engine.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Select returns the big-endian engine when bigEndian is true and the
// little-endian engine otherwise.
func Select(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

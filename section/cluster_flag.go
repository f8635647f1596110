package section

import (
	"github.com/arloliu/geocluster/endian"
	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/format"
)

// ClusterSetFlag holds the first four header bytes of a cluster-set blob.
// These bytes are always stored little-endian.
type ClusterSetFlag struct {
	// Options is a packed field.
	// Bit 0 is reserved, must be 0.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved, must be 0.
	// Bit 4-15 are the magic number, 0xEC10 for cluster-set format v1.
	Options uint16

	// Algorithm is the format.CenteringAlgorithm shared by every cluster in the
	// set, or 0 for an empty set.
	Algorithm uint8

	// Compression is the format.CompressionType of the payload.
	Compression uint8
}

// NewClusterSetFlag returns a little-endian, uncompressed flag for an empty set.
func NewClusterSetFlag() ClusterSetFlag {
	return ClusterSetFlag{
		Options:     MagicClusterSetV1,
		Compression: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the header body and payload are little-endian.
func (f ClusterSetFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header body and payload are big-endian.
func (f ClusterSetFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *ClusterSetFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *ClusterSetFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number bits of Options.
func (f ClusterSetFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber reports whether the magic number is MagicClusterSetV1.
func (f ClusterSetFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicClusterSetV1
}

// CenteringAlgorithm returns the algorithm byte as a format.CenteringAlgorithm.
func (f ClusterSetFlag) CenteringAlgorithm() format.CenteringAlgorithm {
	return format.CenteringAlgorithm(f.Algorithm)
}

// SetCenteringAlgorithm stores the set's centering algorithm.
func (f *ClusterSetFlag) SetCenteringAlgorithm(alg format.CenteringAlgorithm) {
	f.Algorithm = uint8(alg)
}

// CompressionType returns the compression byte as a format.CompressionType.
func (f ClusterSetFlag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompressionType stores the payload compression.
func (f *ClusterSetFlag) SetCompressionType(ct format.CompressionType) {
	f.Compression = uint8(ct)
}

// Validate checks magic number, reserved bits, algorithm and compression.
//
// Returns:
//   - error: ErrInvalidMagicNumber or ErrInvalidHeaderFlags
func (f ClusterSetFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Algorithm != 0 && !f.CenteringAlgorithm().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.CompressionType().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the engine for the flagged byte order.
func (f ClusterSetFlag) GetEndianEngine() endian.EndianEngine {
	return endian.Select(f.IsBigEndian())
}

// Package section defines the fixed binary header of a cluster-set blob.
//
// # Blob Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (variable)                                      │
//	│  - ClusterCount wire-encoded clusters, back to back     │
//	│  - Compressed as one block when Compression != None     │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field        | Type   | Description
//	-------|--------------|--------|--------------------------------------
//	0-1    | Options      | uint16 | Endianness bit, magic number
//	2      | Algorithm    | uint8  | Centering algorithm, 0 for empty set
//	3      | Compression  | uint8  | Payload compression type
//	4-7    | ClusterCount | uint32 | Number of clusters
//	8-11   | Bits         | uint32 | Geohash prefix length of every cluster
//	12-15  | PayloadSize  | uint32 | Uncompressed payload length
//	16-23  | Checksum     | uint64 | xxHash64 of the uncompressed payload
//	24-31  | Reserved     |        | Must be zero
//
// Bytes 0-3 are always little-endian so a reader can find the byte order
// before decoding anything else. Bytes 4-23 and the cluster payload use the
// byte order selected by bit 1 of Options.
//
// # Flag Format
//
//	Options (16 bits):
//	  Bit 0:     Reserved (0)
//	  Bit 1:     Endianness (0=little-endian, 1=big-endian)
//	  Bit 2-3:   Reserved (0)
//	  Bit 4-15:  Magic number (0xEC10 for v1)
//
// # Usage
//
//	h := section.NewClusterSetHeader()
//	h.Flag.WithBigEndian()
//	h.Flag.SetCompressionType(format.CompressionZstd)
//	data := h.Bytes()
//
//	parsed, err := section.ParseClusterSetHeader(data)
//
// This package is used by the blob package and rarely needs to be imported directly.
package section

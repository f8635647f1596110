package section

import (
	"encoding/binary"

	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/geohash"
)

// ClusterSetHeader is the fixed 32-byte header at the start of a cluster-set blob.
type ClusterSetHeader struct {
	// Flag holds options, centering algorithm and compression.
	Flag ClusterSetFlag // byte offset 0-3
	// ClusterCount is the number of clusters in the payload.
	ClusterCount uint32 // byte offset 4-7
	// Bits is the geohash prefix length shared by every cluster.
	Bits uint32 // byte offset 8-11
	// PayloadSize is the length of the payload before compression.
	PayloadSize uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 16-23
	// byte offset 24-31 reserved, zero
}

// NewClusterSetHeader creates a header for an empty set.
// Counts, bits and checksum are set when the encoder finishes.
func NewClusterSetHeader() *ClusterSetHeader {
	return &ClusterSetHeader{
		Flag: NewClusterSetFlag(),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber or ErrInvalidHeaderFlags
func (h *ClusterSetHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.Algorithm = data[2]
	h.Flag.Compression = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.ClusterCount = engine.Uint32(data[4:8])
	h.Bits = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.validate(data[24:32])
}

func (h *ClusterSetHeader) validate(reserved []byte) error {
	for _, b := range reserved {
		if b != 0 {
			return errs.ErrInvalidHeaderFlags
		}
	}

	if h.Bits > geohash.MaxPrefixLength {
		return errs.ErrInvalidHeaderFlags
	}

	// An empty set carries no algorithm; a non-empty one must.
	if (h.ClusterCount == 0) != (h.Flag.Algorithm == 0) {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *ClusterSetHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.EncodeTo(b)

	return b
}

// EncodeTo serializes the header into the first 32 bytes of b.
// It panics if b is shorter than HeaderSize.
func (h *ClusterSetHeader) EncodeTo(b []byte) {
	_ = b[HeaderSize-1]

	binary.LittleEndian.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.Algorithm
	b[3] = h.Flag.Compression

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.ClusterCount)
	engine.PutUint32(b[8:12], h.Bits)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint64(b[16:24], h.Checksum)
	clear(b[24:32])
}

// ParseClusterSetHeader parses a ClusterSetHeader from the start of data.
//
// Parameters:
//   - data: Byte slice starting with the header (must be at least 32 bytes)
//
// Returns:
//   - ClusterSetHeader: Parsed header
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseClusterSetHeader(data []byte) (ClusterSetHeader, error) {
	if len(data) < HeaderSize {
		return ClusterSetHeader{}, errs.ErrInvalidHeaderSize
	}

	h := ClusterSetHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return ClusterSetHeader{}, err
	}

	return h, nil
}

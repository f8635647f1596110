package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/geocluster/cluster"
	"github.com/arloliu/geocluster/compress"
	"github.com/arloliu/geocluster/encoding"
	"github.com/arloliu/geocluster/endian"
	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/internal/hash"
	"github.com/arloliu/geocluster/internal/options"
	"github.com/arloliu/geocluster/section"
)

// MaxClusterCount is the maximum number of clusters in a single cluster set.
const MaxClusterCount uint64 = math.MaxUint32

// ClusterSetEncoder writes clusters sharing one precision and centering
// algorithm into a cluster-set blob.
//
// Note: The ClusterSetEncoder is NOT thread-safe and NOT reusable. After
// Finish, create a new encoder.
type ClusterSetEncoder struct {
	header *section.ClusterSetHeader
	engine endian.EndianEngine
	codec  compress.Codec
	w      *encoding.Writer

	count     int
	bits      int
	algorithm format.CenteringAlgorithm
}

// NewClusterSetEncoder creates an encoder.
//
// Parameters:
//   - opts: Optional configuration (WithCompression, WithLittleEndian, WithBigEndian)
//
// Returns:
//   - *ClusterSetEncoder: Encoder ready for Add calls
//   - error: Option error, e.g. ErrInvalidCompression
func NewClusterSetEncoder(opts ...ClusterSetEncoderOption) (*ClusterSetEncoder, error) {
	header := section.NewClusterSetHeader()
	e := &ClusterSetEncoder{
		header: header,
		engine: header.Flag.GetEndianEngine(),
		codec:  compress.NewNoOpCompressor(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	e.w = encoding.NewSetWriter(e.engine)

	return e, nil
}

// Add appends one cluster.
//
// The first cluster fixes the set's bits and centering algorithm. A cluster
// that fails to encode leaves the set unchanged.
//
// Returns:
//   - error: ErrMixedPrecision if c differs from the first cluster in bits or
//     algorithm, ErrEncoderFinished after Finish, ErrStringTooLong for an
//     oversized identity
func (e *ClusterSetEncoder) Add(c *cluster.Cluster) error {
	if e.w == nil {
		return errs.ErrEncoderFinished
	}

	if e.count > 0 && (c.Bits() != e.bits || c.Algorithm() != e.algorithm) {
		return fmt.Errorf("%w: got %d bits/%s, set has %d bits/%s",
			errs.ErrMixedPrecision, c.Bits(), c.Algorithm(), e.bits, e.algorithm)
	}

	if uint64(e.count) >= MaxClusterCount {
		return fmt.Errorf("%w: more than %d clusters", errs.ErrPayloadTooLarge, MaxClusterCount)
	}

	mark := e.w.Len()
	if err := c.Encode(e.w); err != nil {
		e.w.Truncate(mark)
		return err
	}
	if e.count == 0 {
		e.bits = c.Bits()
		e.algorithm = c.Algorithm()
	}
	e.count++

	return nil
}

// AddAll appends clusters in order and stops at the first error.
func (e *ClusterSetEncoder) AddAll(clusters []*cluster.Cluster) error {
	for _, c := range clusters {
		if err := e.Add(c); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of clusters added so far.
func (e *ClusterSetEncoder) Len() int {
	return e.count
}

// Finish compresses the payload and returns the complete blob.
//
// The returned slice is newly allocated and owned by the caller. The encoder
// releases its buffer and rejects further calls.
//
// Returns:
//   - []byte: Header followed by the (compressed) payload
//   - error: ErrEncoderFinished, ErrPayloadTooLarge or a compression error
func (e *ClusterSetEncoder) Finish() ([]byte, error) {
	if e.w == nil {
		return nil, errs.ErrEncoderFinished
	}
	defer func() {
		e.w.Release()
		e.w = nil
	}()

	payload := e.w.Bytes()
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, len(payload))
	}

	header := *e.header
	header.ClusterCount = uint32(e.count)     //nolint:gosec
	header.Bits = uint32(e.bits)              //nolint:gosec
	header.PayloadSize = uint32(len(payload)) //nolint:gosec
	header.Checksum = hash.Checksum(payload)
	if e.count > 0 {
		header.Flag.SetCenteringAlgorithm(e.algorithm)
	}

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress cluster payload: %w", err)
	}

	blob := make([]byte, section.HeaderSize+len(compressed))
	header.EncodeTo(blob)
	copy(blob[section.PayloadOffset:], compressed)

	return blob, nil
}

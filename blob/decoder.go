package blob

import (
	"fmt"

	"github.com/arloliu/geocluster/cluster"
	"github.com/arloliu/geocluster/compress"
	"github.com/arloliu/geocluster/encoding"
	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/internal/hash"
	"github.com/arloliu/geocluster/section"
)

// ClusterSetDecoder decodes a blob produced by ClusterSetEncoder.
//
// Note: The ClusterSetDecoder is NOT thread-safe.
type ClusterSetDecoder struct {
	data   []byte
	header section.ClusterSetHeader
}

// NewClusterSetDecoder parses and validates the header of data.
//
// The payload is not touched until Decode is called.
//
// Parameters:
//   - data: Encoded blob (must start with a valid 32-byte header)
//
// Returns:
//   - *ClusterSetDecoder: Decoder ready for Decode
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber or ErrInvalidHeaderFlags
func NewClusterSetDecoder(data []byte) (*ClusterSetDecoder, error) {
	header, err := section.ParseClusterSetHeader(data)
	if err != nil {
		return nil, err
	}

	return &ClusterSetDecoder{data: data, header: header}, nil
}

// Header returns the parsed header.
func (d *ClusterSetDecoder) Header() section.ClusterSetHeader {
	return d.header
}

// Decode decompresses the payload, verifies its checksum and decodes every cluster.
//
// Returns:
//   - ClusterSet: Decoded clusters in encoding order
//   - error: ErrChecksumMismatch if the payload is corrupt, ErrMalformedWireData
//     if the payload does not hold exactly ClusterCount clusters of the
//     header's bits and algorithm, or a decompression error
func (d *ClusterSetDecoder) Decode() (ClusterSet, error) {
	payload, err := d.payload()
	if err != nil {
		return ClusterSet{}, err
	}

	flag := d.header.Flag
	r := encoding.NewReader(payload, flag.GetEndianEngine())
	count := int(d.header.ClusterCount)
	bits := int(d.header.Bits)

	clusters := make([]*cluster.Cluster, 0, min(count, len(payload)))
	for i := 0; i < count; i++ {
		c, err := cluster.Decode(r)
		if err != nil {
			return ClusterSet{}, fmt.Errorf("cluster %d: %w", i, err)
		}
		if c.Bits() != bits || c.Algorithm() != flag.CenteringAlgorithm() {
			return ClusterSet{}, fmt.Errorf("%w: cluster %d has %d bits/%s, header says %d bits/%s",
				errs.ErrMalformedWireData, i, c.Bits(), c.Algorithm(), bits, flag.CenteringAlgorithm())
		}
		clusters = append(clusters, c)
	}

	if r.Remaining() != 0 {
		return ClusterSet{}, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrMalformedWireData, r.Remaining())
	}

	return newClusterSet(bits, flag.CenteringAlgorithm(), clusters), nil
}

func (d *ClusterSetDecoder) payload() ([]byte, error) {
	codec, err := compress.GetCodec(d.header.Flag.CompressionType())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(d.data[section.PayloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress cluster payload: %w", err)
	}

	if len(payload) != int(d.header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d",
			errs.ErrMalformedWireData, len(payload), d.header.PayloadSize)
	}

	if !hash.Verify(payload, d.header.Checksum) {
		return nil, errs.ErrChecksumMismatch
	}

	return payload, nil
}

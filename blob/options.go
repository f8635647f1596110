package blob

import (
	"fmt"

	"github.com/arloliu/geocluster/compress"
	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/internal/options"
)

// ClusterSetEncoderOption configures a ClusterSetEncoder.
type ClusterSetEncoderOption = options.Option[*ClusterSetEncoder]

// WithCompression sets the payload compression. The default is CompressionNone.
//
// Parameters:
//   - compression: One of CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
//
// Returns:
//   - ClusterSetEncoderOption: Option rejecting unknown types with ErrInvalidCompression
func WithCompression(compression format.CompressionType) ClusterSetEncoderOption {
	return options.New(func(e *ClusterSetEncoder) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return fmt.Errorf("cluster set: %w", err)
		}
		e.codec = codec
		e.header.Flag.SetCompressionType(compression)

		return nil
	})
}

// WithLittleEndian writes header fields and payload in little-endian order. This is the default.
func WithLittleEndian() ClusterSetEncoderOption {
	return options.NoError(func(e *ClusterSetEncoder) {
		e.header.Flag.WithLittleEndian()
		e.engine = e.header.Flag.GetEndianEngine()
	})
}

// WithBigEndian writes header fields and payload in big-endian order.
func WithBigEndian() ClusterSetEncoderOption {
	return options.NoError(func(e *ClusterSetEncoder) {
		e.header.Flag.WithBigEndian()
		e.engine = e.header.Flag.GetEndianEngine()
	})
}

package compress

import (
	"fmt"

	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/format"
)

// Compressor compresses an encoded cluster-set payload.
//
// The input is the concatenation of wire-encoded clusters produced by the blob
// encoder. Payloads are small (tens of bytes per cluster) and dominated by
// float64 coordinates and repeated algorithm tags, which compress well.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The returned slice is owned by the caller unless the implementation
	// documents otherwise. data is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original bytes of a compressed payload.
	//
	// It returns an error if data is corrupted or was produced by a different
	// algorithm. data is never modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
//
// All codecs in this package are stateless values and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for a compression type.
//
// Parameters:
//   - compressionType: One of CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
//
// Returns:
//   - Codec: Shared codec instance
//   - error: ErrInvalidCompression for an unknown type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// Package compress provides the payload codecs of cluster-set blobs.
//
// A cluster-set blob stores a fixed header followed by the wire-encoded
// clusters. The header names one of the codecs below and the payload is
// compressed as a single block with it:
//
//   - None: pass-through, the default
//   - Zstd: best ratio, used by the CLI when exporting blobs
//   - S2: fast Snappy-compatible block compression
//   - LZ4: fastest decompression
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Use GetCodec to look up the built-in codec for a format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// # Zstd Build Variants
//
// By default Zstd uses github.com/klauspost/compress/zstd. Building with
// cgo and the gozstd tag switches to github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// The two produce interchangeable frames.
//
// # Integration with Blob Package
//
//	enc := blob.NewClusterSetEncoder(blob.WithCompression(format.CompressionZstd))
//
// The decoder reads the compression type from the header and picks the codec
// itself.
package compress

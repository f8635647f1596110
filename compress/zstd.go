package compress

// ZstdCompressor uses Zstandard frames.
//
// It gives the best ratio of the built-in codecs and is what the geocluster
// CLI writes when exporting a merged cluster set. The default build uses the
// pure Go klauspost/compress implementation; building with the gozstd tag and
// cgo enabled switches to the libzstd binding. Both produce standard frames
// and can read each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor returns the Zstandard codec.
//
// Example:
//
//	codec := compress.NewZstdCompressor()
//	compressed, err := codec.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

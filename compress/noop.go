package compress

// NoOpCompressor passes payloads through unchanged.
//
// It is selected by CompressionNone and is the default for cluster-set blobs
// that are kept in memory or are too small to benefit from compression.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor returns the pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself. The result aliases the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself. The result aliases the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

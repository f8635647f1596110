package compress

import "github.com/klauspost/compress/s2"

// S2Compressor uses the S2 block format, a faster Snappy extension.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor returns the S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as one S2 block. An empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes one S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

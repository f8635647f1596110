package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecompressedSize caps the output buffer when a block keeps reporting
// a short destination.
const lz4MaxDecompressedSize = 128 << 20

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor uses the raw LZ4 block format. Block output does not record
// the original length, so decompression grows its buffer until it fits.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor returns the LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes data as one LZ4 block using a pooled lz4.Compressor.
//
// Parameters:
//   - data: Encoded cluster payload
//
// Returns:
//   - []byte: Compressed block (nil if data is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block.
//
// The first attempt uses a buffer four times the block size and doubles on
// lz4.ErrInvalidSourceShortBuffer, up to 128 MiB.
//
// Returns:
//   - []byte: Decompressed payload (nil if data is empty)
//   - error: lz4.ErrInvalidSourceShortBuffer past the cap, or a corrupt-block error
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= lz4MaxDecompressedSize; size *= 2 {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

//go:build !cgo || !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoders and decoders are reused through pools; EncodeAll and DecodeAll do
// not keep per-call state, so a pooled instance may serve any caller.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress encodes data as a Zstandard frame. An empty input yields nil.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decodes a Zstandard frame.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

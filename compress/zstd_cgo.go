//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress encodes data as a Zstandard frame via libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decodes a Zstandard frame via libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

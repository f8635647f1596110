package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.B = append(bb.B, "geohash"...)
	require.Equal(t, []byte("geohash"), bb.Bytes())

	capBefore := cap(bb.B)
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, cap(bb.B), "reset must keep capacity")
}

func TestByteBuffer_Truncate(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []byte
	}{
		{"shorter", 3, []byte("geo")},
		{"zero", 0, []byte{}},
		{"equal length", 7, []byte("geohash")},
		{"beyond length", 100, []byte("geohash")},
		{"negative", -1, []byte("geohash")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(16)
			bb.B = append(bb.B, "geohash"...)
			bb.Truncate(tt.n)
			require.Equal(t, tt.want, bb.Bytes())
		})
	}
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough room", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(10)
		require.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.B = append(bb.B, 1, 2, 3)
		bb.Grow(10)
		require.GreaterOrEqual(t, cap(bb.B), 3+WireBufferDefaultSize)
		require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	})

	t.Run("grows at least required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(WireBufferDefaultSize * 3)
		require.GreaterOrEqual(t, cap(bb.B), WireBufferDefaultSize*3)
	})
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.B = append(bb.B, "data"...)
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len(), "pooled buffers come back empty")

	p.Put(nil)
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)
	bb := NewByteBuffer(1024)
	require.NotPanics(t, func() { p.Put(bb) })
}

func TestDefaultPools_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for k := 0; k < 8; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				wb := GetWireBuffer()
				wb.B = append(wb.B, 1)
				PutWireBuffer(wb)

				sb := GetSetBuffer()
				sb.B = append(sb.B, 2)
				PutSetBuffer(sb)
			}
		}()
	}
	wg.Wait()
}

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty", []byte{}, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
		{"long", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum(tt.data))
			assert.True(t, Verify(tt.data, tt.sum))
			assert.False(t, Verify(tt.data, tt.sum+1))
		})
	}
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 16*1024)
	for i := range data {
		data[i] = byte(i)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		_ = Checksum(data)
	}
}

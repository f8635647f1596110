package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestIsNative(t *testing.T) {
	native := CheckEndianness()
	if native == binary.LittleEndian {
		require.True(t, IsNative(GetLittleEndianEngine()))
		require.False(t, IsNative(GetBigEndianEngine()))
	} else {
		require.True(t, IsNative(GetBigEndianEngine()))
		require.False(t, IsNative(GetLittleEndianEngine()))
	}
}

func TestSelect(t *testing.T) {
	require.Equal(t, GetBigEndianEngine(), Select(true))
	require.Equal(t, GetLittleEndianEngine(), Select(false))
	require.True(t, IsBigEndian(Select(true)))
	require.False(t, IsBigEndian(Select(false)))
}

func TestEngineRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"little", GetLittleEndianEngine(), []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
		{"big", GetBigEndianEngine(), []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.engine.AppendUint64(nil, 0x0102030405060708)
			require.Equal(t, tt.want, buf)
			require.Equal(t, uint64(0x0102030405060708), tt.engine.Uint64(buf))
		})
	}
}

package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	s, cleanup := GetFloat64Slice(10)
	require.Len(t, s, 10)
	for i := range s {
		s[i] = float64(i)
	}
	cleanup()

	s2, cleanup2 := GetFloat64Slice(3)
	defer cleanup2()
	require.Len(t, s2, 3)
}

func TestGetFloat64Slice_Grows(t *testing.T) {
	small, cleanup := GetFloat64Slice(2)
	require.Len(t, small, 2)
	cleanup()

	big, cleanup := GetFloat64Slice(5000)
	defer cleanup()
	require.Len(t, big, 5000)
}

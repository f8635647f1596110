package geocluster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geocluster/blob"
	"github.com/arloliu/geocluster/cluster"
	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/geo"
)

func TestNewBuilder(t *testing.T) {
	b, err := NewBuilder(0.5, cluster.WithCentering(format.Median))
	require.NoError(t, err)
	require.Equal(t, 31, b.Bits())
	require.Equal(t, format.Median, b.Algorithm())

	_, err = NewBuilder(-0.1)
	require.ErrorIs(t, err, errs.ErrInvalidFactor)
}

func TestEncodeDecodeClusters(t *testing.T) {
	b, err := NewBuilder(0.6)
	require.NoError(t, err)
	require.NoError(t, b.Add(geo.NewPoint(52.3702, 4.8952)))
	require.NoError(t, b.Add(geo.NewPoint(52.3710, 4.8960)))
	require.NoError(t, b.AddWithIdentity(geo.NewPoint(-33.8688, 151.2093), cluster.NewIdentity("city", "sydney")))

	clusters, err := MergeAll(b.Build())
	require.NoError(t, err)

	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionZstd} {
		t.Run(ct.String(), func(t *testing.T) {
			data, err := EncodeClusters(clusters, blob.WithCompression(ct))
			require.NoError(t, err)

			decoded, err := DecodeClusters(data)
			require.NoError(t, err)
			require.Len(t, decoded, len(clusters))
			for i := range clusters {
				require.True(t, clusters[i].Equal(decoded[i]))
			}
		})
	}
}

func TestEncodeClusters_MixedPrecision(t *testing.T) {
	a, err := NewBuilder(0.2)
	require.NoError(t, err)
	require.NoError(t, a.Add(geo.NewPoint(1, 1)))
	c, err := NewBuilder(0.8)
	require.NoError(t, err)
	require.NoError(t, c.Add(geo.NewPoint(1, 1)))

	_, err = EncodeClusters(append(a.Build(), c.Build()...))
	require.ErrorIs(t, err, errs.ErrMixedPrecision)
}

func TestDecodeClusters_Invalid(t *testing.T) {
	_, err := DecodeClusters([]byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

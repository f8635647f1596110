// Package geocluster groups geographic points into clusters keyed by a binary
// geohash prefix.
//
// Points that share the leading bits of their geocode fall into the same
// bucket. Each bucket is a cluster that tracks its size, bounding box and a
// center computed either as a running arithmetic mean or as the per-axis
// median of its points. Partial results computed independently, for example
// one per shard, merge into one consistent result.
//
// # Core Features
//
//   - Precision as a factor in [0, 1], mapped to 62..0 geohash bits
//   - Mean (O(1) per point) or median (exact, retains points) centering
//   - Pure, order-independent merging of partial results
//   - Compact binary wire format per cluster
//   - Checksummed cluster-set blobs with None, Zstd, S2 or LZ4 compression
//   - Parallel aggregation over partitions with bounded concurrency
//
// # Basic Usage
//
//	b, _ := geocluster.NewBuilder(0.5)
//	_ = b.Add(geo.NewPoint(52.3702, 4.8952))
//	_ = b.AddWithIdentity(geo.NewPoint(48.8566, 2.3522), cluster.NewIdentity("city", "paris"))
//	clusters := b.Build()
//
// Aggregating partitions in parallel:
//
//	clusters, err := geocluster.Aggregate(ctx, partitions,
//	    geocluster.WithFactor(0.4),
//	    geocluster.WithCentering(format.Median),
//	)
//
// Shipping a result:
//
//	data, _ := geocluster.EncodeClusters(clusters, blob.WithCompression(format.CompressionZstd))
//	decoded, _ := geocluster.DecodeClusters(data)
//
// # Package Structure
//
// This package provides top-level wrappers around the cluster and blob
// packages. Use those packages directly for finer control.
package geocluster

import (
	"github.com/arloliu/geocluster/blob"
	"github.com/arloliu/geocluster/cluster"
)

// NewBuilder creates a cluster builder.
//
// Parameters:
//   - factor: Precision factor in [0, 1]; 0 gives 62-bit buckets, 1 a single bucket
//   - opts: Optional builder settings (cluster.WithCentering, cluster.WithBits)
//
// Returns:
//   - *cluster.Builder: Empty builder
//   - error: ErrInvalidFactor or an option error
//
// Example:
//
//	b, err := geocluster.NewBuilder(0.3, cluster.WithCentering(format.Median))
func NewBuilder(factor float64, opts ...cluster.BuilderOption) (*cluster.Builder, error) {
	return cluster.NewBuilder(factor, opts...)
}

// MergeAll merges partial results from independent builders.
//
// See cluster.MergeAll.
func MergeAll(sets ...[]*cluster.Cluster) ([]*cluster.Cluster, error) {
	return cluster.MergeAll(sets...)
}

// EncodeClusters writes clusters into a cluster-set blob.
//
// All clusters must share bits and centering algorithm, as produced by one
// builder or by MergeAll over builders with the same configuration.
//
// Parameters:
//   - clusters: Clusters to encode, possibly empty
//   - opts: Encoder options (blob.WithCompression, blob.WithBigEndian, ...)
//
// Returns:
//   - []byte: Encoded blob
//   - error: ErrMixedPrecision, ErrInvalidCompression or a compression error
func EncodeClusters(clusters []*cluster.Cluster, opts ...blob.ClusterSetEncoderOption) ([]byte, error) {
	enc, err := blob.NewClusterSetEncoder(opts...)
	if err != nil {
		return nil, err
	}

	if err := enc.AddAll(clusters); err != nil {
		return nil, err
	}

	return enc.Finish()
}

// DecodeClusters reads every cluster of a cluster-set blob.
//
// Parameters:
//   - data: Blob produced by EncodeClusters or blob.ClusterSetEncoder
//
// Returns:
//   - []*cluster.Cluster: Clusters in encoding order
//   - error: Header, checksum or wire decoding error
func DecodeClusters(data []byte) ([]*cluster.Cluster, error) {
	dec, err := blob.NewClusterSetDecoder(data)
	if err != nil {
		return nil, err
	}

	set, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	return set.Clusters(), nil
}

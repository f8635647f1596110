// Package cluster groups geographic points into buckets keyed by a binary
// geohash prefix and maintains a centroid and bounding box per bucket.
//
// # Building
//
// A Builder owns one Cluster per geocode. Its precision comes from a factor in
// [0, 1]; note the inversion, a higher factor gives coarser buckets:
//
//	b, _ := cluster.NewBuilder(0.5, cluster.WithCentering(format.Median))
//	_ = b.AddWithIdentity(geo.NewPoint(52.37, 4.89), cluster.NewIdentity("venue", "1"))
//	_ = b.Add(geo.NewPoint(52.38, 4.90))
//	clusters := b.Build()
//
// # Centering
//
// ArithmeticMean keeps a count-weighted running mean and costs O(1) per point.
// Median retains every point and recomputes the independent per-axis median
// on each Center call, O(n log n).
//
// # Merging
//
// Builders are single-owner. Partitions processed in parallel each get their
// own builder; their outputs are reconciled with MergeAll, which merges
// clusters of equal (geocode, bits). Merge never mutates its operands, so the
// reduction may run in any order or tree shape.
//
// # Wire Format
//
// Encode and Decode move one cluster through an encoding.Writer/Reader; the
// field layout depends on the cluster size (see Cluster.Encode). Raw median
// points are never transmitted: a decoded median cluster of size > 1 keeps the
// transmitted center and later merges combine centers by weighted mean, so the
// result is an approximation of the true median of the union.
package cluster

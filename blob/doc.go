// Package blob encodes and decodes cluster sets.
//
// A cluster set is a list of clusters that share one geohash precision and one
// centering algorithm, typically the merged output of a Builder or of
// cluster.MergeAll. The blob layout is a fixed section.ClusterSetHeader
// followed by the wire-encoded clusters, optionally compressed as one block.
// The header carries an xxHash64 checksum of the uncompressed payload.
//
// # Encoding
//
//	enc, err := blob.NewClusterSetEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithBigEndian(),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := enc.AddAll(clusters); err != nil {
//	    return err
//	}
//	data, err := enc.Finish()
//
// # Decoding
//
//	dec, err := blob.NewClusterSetDecoder(data)
//	if err != nil {
//	    return err
//	}
//	set, err := dec.Decode()
//	if err != nil {
//	    return err
//	}
//	c, ok := set.Locate(geo.NewPoint(52.37, 4.89))
//
// Decoded median clusters with more than one point carry only their center.
// See the cluster package for how such clusters merge.
package blob

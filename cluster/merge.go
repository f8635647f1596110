package cluster

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/geocluster/errs"
)

// Merge combines two clusters of the same bucket into a new cluster.
//
// Neither operand is modified. The result has the summed size, the union of
// the bounds, a freshly computed centroid and never an identity, even when
// both inputs were singletons. Merging is commutative and associative: exactly
// for the median, up to floating-point rounding for the mean.
//
// Returns:
//   - *Cluster: The merged cluster
//   - error: ErrGeocodeMismatch if (geocode, bits) differ, ErrCenteringMismatch
//     if the clusters use different centering algorithms
func (c *Cluster) Merge(other *Cluster) (*Cluster, error) {
	if c.geocode != other.geocode || c.bits != other.bits {
		return nil, fmt.Errorf("%w: %d/%d vs %d/%d",
			errs.ErrGeocodeMismatch, c.geocode, c.bits, other.geocode, other.bits)
	}
	if c.Algorithm() != other.Algorithm() {
		return nil, fmt.Errorf("%w: %s vs %s", errs.ErrCenteringMismatch, c.Algorithm(), other.Algorithm())
	}

	return &Cluster{
		size:     c.size + other.size,
		geocode:  c.geocode,
		bits:     c.bits,
		bounds:   c.bounds.Extend(other.bounds),
		centroid: c.centroid.merge(other.centroid, c.size, other.size),
	}, nil
}

type bucketKey struct {
	bits    int
	geocode uint64
}

// MergeAll folds partial results from independent builders into one list.
//
// Clusters sharing (geocode, bits) are merged pairwise; a cluster with no
// counterpart is copied through unchanged and keeps its identity. The result
// is ordered by bits, then geocode.
func MergeAll(sets ...[]*Cluster) ([]*Cluster, error) {
	merged := make(map[bucketKey]*Cluster)
	for _, set := range sets {
		for _, c := range set {
			key := bucketKey{bits: c.bits, geocode: c.geocode}
			prev, ok := merged[key]
			if !ok {
				merged[key] = c.Clone()
				continue
			}

			next, err := prev.Merge(c)
			if err != nil {
				return nil, err
			}
			merged[key] = next
		}
	}

	out := make([]*Cluster, 0, len(merged))
	for _, c := range merged {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Cluster) int {
		if a.bits != b.bits {
			return cmp.Compare(a.bits, b.bits)
		}

		return cmp.Compare(a.geocode, b.geocode)
	})

	return out, nil
}

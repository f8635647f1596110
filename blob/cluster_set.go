package blob

import (
	"github.com/arloliu/geocluster/cluster"
	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/geo"
	"github.com/arloliu/geocluster/geohash"
)

// ClusterSet is a decoded cluster-set blob.
//
// All clusters share Bits and Algorithm. The set indexes clusters by geocode
// so a point can be routed to its bucket without a scan.
type ClusterSet struct {
	bits      int
	algorithm format.CenteringAlgorithm
	clusters  []*cluster.Cluster
	byGeocode map[uint64]int
}

func newClusterSet(bits int, alg format.CenteringAlgorithm, clusters []*cluster.Cluster) ClusterSet {
	byGeocode := make(map[uint64]int, len(clusters))
	for i, c := range clusters {
		byGeocode[c.Geocode()] = i
	}

	return ClusterSet{
		bits:      bits,
		algorithm: alg,
		clusters:  clusters,
		byGeocode: byGeocode,
	}
}

// Bits returns the geohash prefix length of every cluster in the set.
func (s ClusterSet) Bits() int {
	return s.bits
}

// Algorithm returns the centering algorithm of the set, or 0 for an empty set.
func (s ClusterSet) Algorithm() format.CenteringAlgorithm {
	return s.algorithm
}

// Len returns the number of clusters.
func (s ClusterSet) Len() int {
	return len(s.clusters)
}

// Clusters returns the clusters in encoding order. The slice is shared with the set.
func (s ClusterSet) Clusters() []*cluster.Cluster {
	return s.clusters
}

// Get returns the cluster stored under geocode.
func (s ClusterSet) Get(geocode uint64) (*cluster.Cluster, bool) {
	i, ok := s.byGeocode[geocode]
	if !ok {
		return nil, false
	}

	return s.clusters[i], true
}

// Locate returns the cluster whose bucket contains p.
func (s ClusterSet) Locate(p geo.Point) (*cluster.Cluster, bool) {
	return s.Get(geohash.Encode(p, s.bits))
}

package cluster

import (
	"fmt"
	"math"

	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/geo"
	"github.com/arloliu/geocluster/geohash"
	"github.com/arloliu/geocluster/internal/options"
)

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*Builder]

// Builder routes points to their geocode bucket and accumulates one Cluster per bucket.
//
// Note: The Builder is NOT thread-safe. Parallel partitions should each use
// their own builder and reconcile the results with MergeAll.
type Builder struct {
	bits      int
	algorithm format.CenteringAlgorithm
	clusters  map[uint64]*Cluster
}

// BitsForFactor converts a precision factor into a geocode bit length.
//
// The mapping is inverted: factor 0 gives MaxPrefixLength bits (many small
// clusters) and factor 1 gives 0 bits (one global cluster).
//
//	bits = MaxPrefixLength - round(factor * MaxPrefixLength)
//
// Returns ErrInvalidFactor if factor is NaN or outside [0, 1].
func BitsForFactor(factor float64) (int, error) {
	if math.IsNaN(factor) || factor < 0 || factor > 1 {
		return 0, fmt.Errorf("%w: got %v", errs.ErrInvalidFactor, factor)
	}

	return geohash.MaxPrefixLength - int(math.Round(factor*geohash.MaxPrefixLength)), nil
}

// NewBuilder creates a builder whose precision is derived from factor.
//
// Parameters:
//   - factor: Precision factor in [0, 1]; higher means coarser buckets
//   - opts: Optional settings (WithCentering, WithBits)
//
// Returns:
//   - *Builder: Empty builder using the arithmetic mean unless configured otherwise
//   - error: ErrInvalidFactor or an option validation error
func NewBuilder(factor float64, opts ...BuilderOption) (*Builder, error) {
	bits, err := BitsForFactor(factor)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		bits:      bits,
		algorithm: format.ArithmeticMean,
		clusters:  make(map[uint64]*Cluster),
	}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// WithCentering selects the centering algorithm for every cluster of the builder.
func WithCentering(alg format.CenteringAlgorithm) BuilderOption {
	return options.New(func(b *Builder) error {
		if !alg.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCenteringAlgorithm, alg)
		}
		b.algorithm = alg

		return nil
	})
}

// WithBits overrides the bit length derived from the factor.
func WithBits(bits int) BuilderOption {
	return options.New(func(b *Builder) error {
		if err := geohash.ValidateBits(bits); err != nil {
			return err
		}
		b.bits = bits

		return nil
	})
}

// Add routes p to its bucket, creating a singleton cluster if the bucket is empty.
func (b *Builder) Add(p geo.Point) error {
	return b.AddWithIdentity(p, nil)
}

// AddWithIdentity is like Add but records id when p starts a new cluster.
//
// Returns ErrInvalidCoordinate if p is out of range.
func (b *Builder) AddWithIdentity(p geo.Point, id *Identity) error {
	if err := p.Validate(); err != nil {
		return err
	}

	code := geohash.Encode(p, b.bits)
	if c, ok := b.clusters[code]; ok {
		// The bucket was chosen by encoding p, so Add cannot fail here.
		return c.Add(p)
	}
	b.clusters[code] = newSingleton(p, code, b.bits, b.algorithm, id)

	return nil
}

// AddRecord adds a record's point and identity.
func (b *Builder) AddRecord(r Record) error {
	return b.AddWithIdentity(r.Point, r.Identity)
}

// Build returns a snapshot of every cluster. The snapshot is independent of
// the builder: later adds do not change it. Order is unspecified.
func (b *Builder) Build() []*Cluster {
	out := make([]*Cluster, 0, len(b.clusters))
	for _, c := range b.clusters {
		out = append(out, c.Clone())
	}

	return out
}

// Len returns the number of clusters.
func (b *Builder) Len() int {
	return len(b.clusters)
}

// Bits returns the geocode bit length.
func (b *Builder) Bits() int {
	return b.bits
}

// Algorithm returns the centering algorithm.
func (b *Builder) Algorithm() format.CenteringAlgorithm {
	return b.algorithm
}

// Reset discards all clusters to start a new build cycle.
func (b *Builder) Reset() {
	clear(b.clusters)
}

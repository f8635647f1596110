package geocluster

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/geocluster/cluster"
	"github.com/arloliu/geocluster/errs"
	"github.com/arloliu/geocluster/format"
	"github.com/arloliu/geocluster/internal/options"
)

// DefaultFactor is the precision factor Aggregate uses unless WithFactor or WithBits is given.
const DefaultFactor = 0.5

// ctxCheckInterval is the number of points clustered between context checks.
const ctxCheckInterval = 4096

// Partition is one independently clustered slice of the input.
type Partition = []cluster.Record

// AggregateOption configures Aggregate.
type AggregateOption = options.Option[*aggregateConfig]

type aggregateConfig struct {
	factor      float64
	bits        int
	hasBits     bool
	algorithm   format.CenteringAlgorithm
	concurrency int
	logger      *Logger
}

func defaultAggregateConfig() *aggregateConfig {
	return &aggregateConfig{
		factor:      DefaultFactor,
		algorithm:   format.ArithmeticMean,
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
	}
}

// WithFactor sets the precision factor of every partition builder.
func WithFactor(factor float64) AggregateOption {
	return options.New(func(c *aggregateConfig) error {
		if _, err := cluster.BitsForFactor(factor); err != nil {
			return err
		}
		c.factor = factor

		return nil
	})
}

// WithBits sets the geohash bit length directly, overriding the factor.
func WithBits(bits int) AggregateOption {
	return options.NoError(func(c *aggregateConfig) {
		c.bits = bits
		c.hasBits = true
	})
}

// WithCentering selects the centering algorithm.
func WithCentering(alg format.CenteringAlgorithm) AggregateOption {
	return options.New(func(c *aggregateConfig) error {
		if !alg.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCenteringAlgorithm, alg)
		}
		c.algorithm = alg

		return nil
	})
}

// WithConcurrency bounds the number of partitions clustered at once.
// Values below 1 select GOMAXPROCS.
func WithConcurrency(n int) AggregateOption {
	return options.NoError(func(c *aggregateConfig) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		c.concurrency = n
	})
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *Logger) AggregateOption {
	return options.NoError(func(c *aggregateConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

func (c *aggregateConfig) newBuilder() (*cluster.Builder, error) {
	opts := []cluster.BuilderOption{cluster.WithCentering(c.algorithm)}
	if c.hasBits {
		opts = append(opts, cluster.WithBits(c.bits))
	}

	return cluster.NewBuilder(c.factor, opts...)
}

// Aggregate clusters each partition with its own builder, in parallel, and
// merges the partial results.
//
// The result equals that of one builder fed every record, up to
// floating-point rounding of mean centers. Identities survive only on
// clusters that hold a single record overall.
//
// The context is checked before each partition starts and every 4096 points
// within a partition.
//
// Parameters:
//   - ctx: Cancellation for the fan-out
//   - partitions: Input records, one slice per partition
//   - opts: WithFactor, WithBits, WithCentering, WithConcurrency, WithLogger
//
// Returns:
//   - []*cluster.Cluster: Merged clusters ordered by geocode
//   - error: Option error, the first partition error, or ctx.Err()
func Aggregate(ctx context.Context, partitions []Partition, opts ...AggregateOption) ([]*cluster.Cluster, error) {
	cfg := defaultAggregateConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	probe, err := cfg.newBuilder()
	if err != nil {
		return nil, err
	}
	logger := cfg.logger.WithBits(probe.Bits()).WithAlgorithm(probe.Algorithm())

	start := time.Now()
	results := make([][]*cluster.Cluster, len(partitions))
	points := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	for i, part := range partitions {
		if gctx.Err() != nil {
			break
		}
		points += len(part)

		i, part := i, part
		g.Go(func() error {
			clusters, err := cfg.clusterPartition(gctx, part)
			logger.LogPartition(gctx, i, len(part), len(clusters), err)
			if err != nil {
				return fmt.Errorf("partition %d: %w", i, err)
			}
			results[i] = clusters

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged, err := cluster.MergeAll(results...)
	if err != nil {
		return nil, err
	}
	logger.LogMerge(ctx, len(partitions), points, len(merged), time.Since(start))

	return merged, nil
}

func (c *aggregateConfig) clusterPartition(ctx context.Context, records Partition) ([]*cluster.Cluster, error) {
	b, err := c.newBuilder()
	if err != nil {
		return nil, err
	}

	for i, r := range records {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if err := b.AddRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return b.Build(), nil
}

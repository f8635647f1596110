// Command geocluster clusters a CSV of points according to a YAML facet
// configuration and prints the facet response as JSON.
//
// Usage:
//
//	geocluster -config facet.yaml -points points.csv [-partitions N] [-env .env] [-blob out.bin]
//
// The points file holds rows of lat,lon or lat,lon,type,id; a header row is
// optional. Environment (also read from the -env file):
//
//	GEOCLUSTER_LOG_LEVEL   debug, info, warn or error (default info)
//	GEOCLUSTER_LOG_FORMAT  text or json (default text)
//	GEOCLUSTER_PARTITIONS  default for -partitions
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/arloliu/geocluster"
	"github.com/arloliu/geocluster/blob"
	"github.com/arloliu/geocluster/facet"
	"github.com/arloliu/geocluster/format"
)

type options struct {
	configPath string
	pointsPath string
	envPath    string
	blobPath   string
	partitions int
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "geocluster: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("geocluster", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to the YAML facet configuration (required)")
	fs.StringVar(&opts.pointsPath, "points", "", "Path to the CSV points file (required)")
	fs.StringVar(&opts.envPath, "env", "", "Optional .env file with GEOCLUSTER_* settings")
	fs.StringVar(&opts.blobPath, "blob", "", "Also write the clusters as a zstd cluster-set blob")
	fs.IntVar(&opts.partitions, "partitions", 0, "Number of partitions (default: GEOCLUSTER_PARTITIONS or 1)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.configPath == "" {
		return options{}, fmt.Errorf("-config is required")
	}
	if opts.pointsPath == "" {
		return options{}, fmt.Errorf("-points is required")
	}

	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	if opts.envPath != "" {
		if err := godotenv.Load(opts.envPath); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}
	if opts.partitions <= 0 {
		opts.partitions = env.partitions
	}
	logger := env.logger()

	cfg, err := facet.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	records, err := readPointsFile(opts.pointsPath)
	if err != nil {
		return err
	}
	logger.Debug("points loaded", "path", opts.pointsPath, "count", len(records))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clusters, err := geocluster.Aggregate(ctx, partition(records, opts.partitions),
		geocluster.WithFactor(cfg.Factor),
		geocluster.WithCentering(cfg.CenteringAlgorithm),
		geocluster.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if opts.blobPath != "" {
		data, err := geocluster.EncodeClusters(clusters, blob.WithCompression(format.CompressionZstd))
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.blobPath, data, 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("write blob: %w", err)
		}
		logger.Info("blob written", "path", opts.blobPath, "bytes", len(data))
	}

	out, err := facet.Render(cfg, clusters).MarshalIndent("", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	_, err = stdout.Write(out)

	return err
}

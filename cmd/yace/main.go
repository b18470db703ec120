// Command yace constructs a k-means coreset from a dataset file and writes
// the weighted points to a results file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	yace "github.com/sheikhomar/yace-rw"
	"github.com/sheikhomar/yace-rw/blobstore"
	yminio "github.com/sheikhomar/yace-rw/blobstore/minio"
	"github.com/sheikhomar/yace-rw/blobstore/s3"
	"github.com/sheikhomar/yace-rw/results"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		compression   string
		s3Bucket      string
		minioEndpoint string
		minioBucket   string
		minioSecure   bool
		logLevel      string
	)

	cmd := &cobra.Command{
		Use:   "yace <algorithm> <dataset> <data-path> <k> <coreset-size> <seed> <output-dir>",
		Short: "Construct k-means coresets from large point sets",
		Long: `yace approximates a large point set by a small weighted subset (a coreset)
that preserves k-means clustering cost within provable bounds.

Arguments:
  algorithm     sampling strategy: uniform-sampling, sensitivity-sampling or group-sampling
  dataset       dataset name: csv, census, covertype or tower
  data-path     file path to the dataset (gzip input is decompressed transparently)
  k             number of desired clusters
  coreset-size  target number of coreset points
  seed          random seed; identical seeds reproduce identical coresets
  output-dir    directory (or object key prefix) for results and the done marker`,
		Args:          cobra.ExactArgs(7),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid cluster count %q: %w", args[3], err)
			}
			size, err := strconv.Atoi(args[4])
			if err != nil {
				return fmt.Errorf("invalid coreset size %q: %w", args[4], err)
			}
			seed, err := strconv.ParseInt(args[5], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed %q: %w", args[5], err)
			}
			outputDir := args[6]

			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			comp, err := results.CompressionByName(compression)
			if err != nil {
				return err
			}

			var store blobstore.Store
			switch {
			case s3Bucket != "":
				store, err = s3.New(cmd.Context(), s3Bucket, outputDir)
				if err != nil {
					return fmt.Errorf("connect to S3 bucket %q: %w", s3Bucket, err)
				}
			case minioEndpoint != "":
				if minioBucket == "" {
					return fmt.Errorf("--minio-bucket is required with --minio-endpoint")
				}
				store, err = yminio.New(minioEndpoint, minioBucket, outputDir, minioSecure)
				if err != nil {
					return fmt.Errorf("connect to MinIO endpoint %q: %w", minioEndpoint, err)
				}
			default:
				store = blobstore.NewLocalStore(outputDir)
			}

			runner := yace.New(
				yace.WithLogger(logger),
				yace.WithStore(store),
				yace.WithCompression(comp),
			)

			_, err = runner.Run(cmd.Context(), yace.Config{
				Algorithm:   strings.ToLower(strings.TrimSpace(args[0])),
				Dataset:     strings.ToLower(strings.TrimSpace(args[1])),
				DataPath:    args[2],
				NumClusters: k,
				CoresetSize: size,
				Seed:        seed,
			})
			if err != nil {
				logger.Error("run failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&compression, "compression", "gzip", "results compression: gzip, zstd, lz4 or none")
	cmd.Flags().StringVar(&s3Bucket, "s3-bucket", "", "write results to this S3 bucket; the output directory argument becomes the key prefix")
	cmd.Flags().StringVar(&minioEndpoint, "minio-endpoint", "", "write results to a MinIO endpoint (credentials from MINIO_ACCESS_KEY/MINIO_SECRET_KEY)")
	cmd.Flags().StringVar(&minioBucket, "minio-bucket", "", "bucket name for --minio-endpoint; the output directory argument becomes the key prefix")
	cmd.Flags().BoolVar(&minioSecure, "minio-secure", false, "use TLS when connecting to the MinIO endpoint")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	return cmd
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

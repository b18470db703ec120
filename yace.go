package yace

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/sheikhomar/yace-rw/coreset"
	"github.com/sheikhomar/yace-rw/dataset"
	"github.com/sheikhomar/yace-rw/results"
	"github.com/sheikhomar/yace-rw/rng"
)

// Config captures the parameters of one coreset construction run.
type Config struct {
	// Algorithm selects the sampling strategy by name (see coreset.ByName).
	Algorithm string

	// Dataset selects the input parser by name (see dataset.ByName).
	Dataset string

	// DataPath is the dataset file location.
	DataPath string

	// NumClusters is the number of desired final clusters k. The
	// importance-based strategies run their bicriteria approximation with
	// 2k centers.
	NumClusters int

	// CoresetSize is the target number of coreset entries T.
	CoresetSize int

	// Seed initializes the deterministic random source for the run.
	Seed int64
}

// Runner executes coreset construction runs.
type Runner struct {
	opts options
}

// New creates a Runner.
func New(optFns ...Option) *Runner {
	opts := options{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		compression: results.CompressionGzip,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{opts: opts}
}

// Run parses the dataset, samples a coreset with the configured strategy and,
// when a store is configured, persists the compressed results followed by the
// completion marker. The run aborts before producing a coreset on any invalid
// argument or parse failure; no partial coreset is ever exposed.
func (r *Runner) Run(ctx context.Context, cfg Config) (*coreset.Coreset, error) {
	logger := r.opts.logger

	logger.InfoContext(ctx, "starting run",
		"algorithm", cfg.Algorithm,
		"dataset", cfg.Dataset,
		"data_path", cfg.DataPath,
		"clusters", cfg.NumClusters,
		"coreset_size", cfg.CoresetSize,
		"seed", cfg.Seed,
	)

	parser, err := dataset.ByName(cfg.Dataset)
	if err != nil {
		return nil, translateError(err)
	}

	start := time.Now()
	m, err := parser.Parse(cfg.DataPath)
	if err != nil {
		logger.ErrorContext(ctx, "data parsing failed", "data_path", cfg.DataPath, "error", err)
		return nil, translateError(err)
	}
	logger.InfoContext(ctx, "data parsed",
		"points", m.Rows(),
		"dimensions", m.Cols(),
		"duration", time.Since(start),
	)

	strategy, err := coreset.ByName(cfg.Algorithm, 2*cfg.NumClusters, cfg.CoresetSize, rng.New(cfg.Seed))
	if err != nil {
		return nil, translateError(err)
	}

	start = time.Now()
	cs, err := strategy.Run(m)
	if err != nil {
		logger.ErrorContext(ctx, "coreset construction failed", "algorithm", cfg.Algorithm, "error", err)
		return nil, translateError(err)
	}
	logger.InfoContext(ctx, "coreset constructed",
		"entries", cs.Len(),
		"total_weight", cs.TotalWeight(),
		"duration", time.Since(start),
	)

	if r.opts.store != nil {
		if err := results.Write(ctx, r.opts.store, cs, m, r.opts.compression); err != nil {
			logger.ErrorContext(ctx, "writing results failed", "error", err)
			return nil, translateError(err)
		}
		if err := results.WriteDoneMarker(ctx, r.opts.store); err != nil {
			logger.ErrorContext(ctx, "writing completion marker failed", "error", err)
			return nil, translateError(err)
		}
		logger.InfoContext(ctx, "results written",
			"file", results.FileName(r.opts.compression),
			"compression", r.opts.compression.String(),
		)
	}

	return cs, nil
}

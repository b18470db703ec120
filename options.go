package yace

import (
	"io"
	"log/slog"

	"github.com/sheikhomar/yace-rw/blobstore"
	"github.com/sheikhomar/yace-rw/results"
)

type options struct {
	logger      *slog.Logger
	store       blobstore.Store
	compression results.Compression
}

// Option configures Runner behavior.
type Option func(*options)

// WithLogger configures structured logging for the run.
//
// If nil is passed, log output is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		o.logger = l
	}
}

// WithStore configures where results and the completion marker are written.
// Without a store the coreset is only returned to the caller.
func WithStore(s blobstore.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithCompression configures the results stream compression.
//
// The default is gzip at best compression, matching the results.txt.gz
// files the downstream evaluation tooling consumes.
func WithCompression(c results.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

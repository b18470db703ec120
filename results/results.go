// Package results serializes finished coresets to a blob store. Each coreset
// entry becomes one record holding the original point's coordinates followed
// by its weight, written through a pluggable compression layer. Consumers
// reconstruct a weighted point set for downstream clustering from the file.
package results

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/sheikhomar/yace-rw/blobstore"
	"github.com/sheikhomar/yace-rw/coreset"
	"github.com/sheikhomar/yace-rw/matrix"
)

// ErrUnknownCompression is returned for an unrecognized compression name.
var ErrUnknownCompression = errors.New("unknown compression")

// Compression defines the algorithm applied to the results stream.
type Compression uint8

const (
	// CompressionGzip is the default, matching the results.txt.gz files the
	// evaluation tooling consumes.
	CompressionGzip Compression = iota
	// CompressionZstd trades compatibility for a better ratio.
	CompressionZstd
	// CompressionLZ4 favors speed over ratio.
	CompressionLZ4
	// CompressionNone writes the plain text stream.
	CompressionNone
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionNone:
		return "none"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// CompressionByName returns the compression registered under the given name.
func CompressionByName(name string) (Compression, error) {
	switch name {
	case "gzip":
		return CompressionGzip, nil
	case "zstd":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	case "none":
		return CompressionNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// FileName returns the conventional results file name for the compression.
func FileName(c Compression) string {
	switch c {
	case CompressionZstd:
		return "results.txt.zst"
	case CompressionLZ4:
		return "results.txt.lz4"
	case CompressionNone:
		return "results.txt"
	default:
		return "results.txt.gz"
	}
}

// DoneFileName is the completion marker written after the results, so
// pollers can tell a finished run from one that died mid-write.
const DoneFileName = "done.out"

// NewWriter wraps w with the given compression.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case CompressionZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionNone:
		return nopWriteCloser{w}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}

// NewReader wraps r with decompression matching the given compression.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompressionNone:
		return io.NopCloser(r), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Write serializes the coreset against its original points and stores the
// compressed stream under the conventional results file name.
func Write(ctx context.Context, store blobstore.Store, cs *coreset.Coreset, m *matrix.Matrix, c Compression) error {
	var buf bytes.Buffer

	w, err := NewWriter(&buf, c)
	if err != nil {
		return err
	}
	if err := cs.WriteTo(m, w); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize %v stream: %w", c, err)
	}

	return store.Put(ctx, FileName(c), buf.Bytes())
}

// WriteDoneMarker stores the completion marker.
func WriteDoneMarker(ctx context.Context, store blobstore.Store) error {
	return store.Put(ctx, DoneFileName, []byte("done\n"))
}

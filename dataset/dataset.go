// Package dataset provides format-specific readers that turn raw dataset
// files into a point matrix. Parsing failures abort the run; no partially
// parsed matrix is ever returned.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/sheikhomar/yace-rw/matrix"
)

// ErrUnknownDataset is returned by ByName for an unrecognized dataset name.
var ErrUnknownDataset = errors.New("unknown dataset")

// ErrDataFormat indicates malformed input at a specific location.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDataFormat struct {
	Path  string
	Line  int
	cause error
}

func (e *ErrDataFormat) Error() string {
	return fmt.Sprintf("malformed data in %s at line %d: %v", e.Path, e.Line, e.cause)
}

func (e *ErrDataFormat) Unwrap() error { return e.cause }

// Parser parses a dataset file into a point matrix.
type Parser interface {
	Parse(path string) (*matrix.Matrix, error)
}

// Dataset names accepted by ByName.
const (
	NameCSV       = "csv"
	NameCensus    = "census"
	NameCovertype = "covertype"
	NameTower     = "tower"
)

// ByName returns the parser registered under the given dataset name.
func ByName(name string) (Parser, error) {
	switch name {
	case NameCSV:
		return &CSVParser{}, nil
	case NameCensus:
		return &CensusParser{}, nil
	case NameCovertype:
		return &CovertypeParser{}, nil
	case NameTower:
		return &TowerParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
}

// open opens a dataset file, transparently decompressing gzip input.
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, &ErrDataFormat{Path: path, Line: 0, cause: err}
	}

	return &gzipReadCloser{Reader: gz, file: f}, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (r *gzipReadCloser) Close() error {
	gzErr := r.Reader.Close()
	if err := r.file.Close(); err != nil {
		return err
	}
	return gzErr
}

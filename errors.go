package yace

import (
	"errors"
	"fmt"

	"github.com/sheikhomar/yace-rw/bicriteria"
	"github.com/sheikhomar/yace-rw/coreset"
	"github.com/sheikhomar/yace-rw/dataset"
	"github.com/sheikhomar/yace-rw/results"
	"github.com/sheikhomar/yace-rw/rng"
)

var (
	// ErrInvalidArgument is returned for invalid run parameters: a target
	// size of zero or exceeding the population, an unknown strategy, dataset
	// or compression name, or a malformed weighting distribution.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataFormat is returned when the dataset file cannot be parsed.
	ErrDataFormat = errors.New("malformed dataset")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Argument normalization.
	switch {
	case errors.Is(err, coreset.ErrInvalidTargetSize),
		errors.Is(err, coreset.ErrInvalidNumCenters),
		errors.Is(err, coreset.ErrUnknownStrategy),
		errors.Is(err, dataset.ErrUnknownDataset),
		errors.Is(err, results.ErrUnknownCompression),
		errors.Is(err, bicriteria.ErrInvalidCenters),
		errors.Is(err, rng.ErrInvalidCount),
		errors.Is(err, rng.ErrInvalidDistribution):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	var edf *dataset.ErrDataFormat
	if errors.As(err, &edf) {
		return fmt.Errorf("%w: %w", ErrDataFormat, err)
	}

	return err
}

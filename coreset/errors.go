package coreset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTargetSize is returned when the requested coreset size is
	// zero or exceeds the population.
	ErrInvalidTargetSize = errors.New("invalid target coreset size")

	// ErrInvalidNumCenters is returned when the bicriteria center count is
	// not positive.
	ErrInvalidNumCenters = errors.New("invalid number of centers")

	// ErrUnknownStrategy is returned by ByName for an unrecognized strategy
	// name.
	ErrUnknownStrategy = errors.New("unknown sampling strategy")
)

// ErrInvalidIndex indicates an internal consistency violation: a coreset
// entry refers to a point outside the original matrix.
type ErrInvalidIndex struct {
	Index int
	Size  int
}

func (e *ErrInvalidIndex) Error() string {
	return fmt.Sprintf("invalid point index %d for %d points", e.Index, e.Size)
}

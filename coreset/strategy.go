package coreset

import (
	"fmt"

	"github.com/sheikhomar/yace-rw/bicriteria"
	"github.com/sheikhomar/yace-rw/matrix"
	"github.com/sheikhomar/yace-rw/rng"
)

// Strategy produces a coreset from a point matrix. Implementations are
// parameterized at construction and retain no mutable state across runs
// except through the shared random source.
type Strategy interface {
	Run(m *matrix.Matrix) (*Coreset, error)
}

// CostFunc computes per-point clustering cost estimates against k approximate
// centers. The default is bicriteria.Costs; tests substitute stubs to
// exercise the sampling math in isolation.
type CostFunc func(m *matrix.Matrix, k int, r *rng.RNG) ([]float64, error)

// Strategy names accepted by ByName.
const (
	StrategyUniform     = "uniform-sampling"
	StrategySensitivity = "sensitivity-sampling"
	StrategyGroup       = "group-sampling"
)

// Group sampling defaults used by ByName.
const (
	DefaultBeta             = 10000
	DefaultGroupRangeSize   = 4
	DefaultMinimumGroupSize = 1
)

// Options configures the importance-based strategies.
type Options struct {
	// CostFunc overrides the bicriteria cost estimator.
	CostFunc CostFunc
}

// DefaultOptions returns the default strategy options.
func DefaultOptions() Options {
	return Options{
		CostFunc: bicriteria.Costs,
	}
}

// ByName returns the strategy registered under the given name. The number of
// centers numCenters is ignored by uniform sampling; group sampling uses the
// package defaults for its budget parameters.
func ByName(name string, numCenters, targetSize int, r *rng.RNG) (Strategy, error) {
	switch name {
	case StrategyUniform:
		return NewUniformSampling(targetSize, r), nil
	case StrategySensitivity:
		return NewSensitivitySampling(numCenters, targetSize, r), nil
	case StrategyGroup:
		return NewGroupSampling(numCenters, targetSize, DefaultBeta, DefaultGroupRangeSize, DefaultMinimumGroupSize, r), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

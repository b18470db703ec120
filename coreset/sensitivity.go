package coreset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/sheikhomar/yace-rw/matrix"
	"github.com/sheikhomar/yace-rw/rng"
)

// SensitivitySampling draws points with replacement proportional to their
// sensitivity (an upper bound on each point's share of the worst-case
// clustering cost) and weighs each draw by the inverse of its selection
// probability, making the weighted sample an unbiased cost estimator.
type SensitivitySampling struct {
	numCenters int
	targetSize int
	rng        *rng.RNG
	costFunc   CostFunc
}

// NewSensitivitySampling creates a sensitivity sampling strategy. numCenters
// is the bicriteria center count, conventionally 2k for a target of k final
// clusters.
func NewSensitivitySampling(numCenters, targetSize int, r *rng.RNG, optFns ...func(*Options)) *SensitivitySampling {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &SensitivitySampling{
		numCenters: numCenters,
		targetSize: targetSize,
		rng:        r,
		costFunc:   opts.CostFunc,
	}
}

// Run samples the coreset. Repeated draws of the same point each contribute
// their own weighted entry.
func (s *SensitivitySampling) Run(m *matrix.Matrix) (*Coreset, error) {
	n := m.Rows()
	if s.targetSize <= 0 || s.targetSize > n {
		return nil, fmt.Errorf("%w: %d of %d points", ErrInvalidTargetSize, s.targetSize, n)
	}
	if s.numCenters <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNumCenters, s.numCenters)
	}

	sens, err := sensitivities(m, s.numCenters, s.rng, s.costFunc)
	if err != nil {
		return nil, err
	}

	draws, err := s.rng.ChooseWeighted(s.targetSize, sens)
	if err != nil {
		return nil, err
	}

	cs := New(s.targetSize)
	for _, idx := range draws {
		// Horvitz-Thompson style inverse-probability weight.
		cs.AddPoint(idx, 1/(float64(s.targetSize)*sens[idx]))
	}

	return cs, nil
}

// sensitivities normalizes per-point bicriteria costs into a probability
// distribution. When the total cost is zero (all points coincide with
// centers) it falls back to the uniform distribution.
func sensitivities(m *matrix.Matrix, numCenters int, r *rng.RNG, costFn CostFunc) ([]float64, error) {
	costs, err := costFn(m, numCenters, r)
	if err != nil {
		return nil, err
	}

	sens := make([]float64, len(costs))
	total := floats.Sum(costs)
	if total == 0 {
		uniform := 1 / float64(len(costs))
		for i := range sens {
			sens[i] = uniform
		}
		return sens, nil
	}

	copy(sens, costs)
	floats.Scale(1/total, sens)

	return sens, nil
}

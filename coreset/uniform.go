package coreset

import (
	"fmt"

	"github.com/sheikhomar/yace-rw/matrix"
	"github.com/sheikhomar/yace-rw/rng"
)

// UniformSampling draws the target number of distinct points uniformly
// without replacement and assigns each the same weight N/T, so each sampled
// point stands in for N/T original points on average.
type UniformSampling struct {
	targetSize int
	rng        *rng.RNG
}

// NewUniformSampling creates a uniform sampling strategy with the given
// target coreset size.
func NewUniformSampling(targetSize int, r *rng.RNG) *UniformSampling {
	return &UniformSampling{
		targetSize: targetSize,
		rng:        r,
	}
}

// Run samples the coreset. It fails before any coreset mutation if the target
// size is zero or exceeds the number of points.
func (s *UniformSampling) Run(m *matrix.Matrix) (*Coreset, error) {
	n := m.Rows()
	if s.targetSize <= 0 || s.targetSize > n {
		return nil, fmt.Errorf("%w: %d of %d points", ErrInvalidTargetSize, s.targetSize, n)
	}

	indices, err := s.rng.ChooseWithoutReplacement(s.targetSize, n)
	if err != nil {
		return nil, err
	}

	weight := float64(n) / float64(s.targetSize)

	cs := New(s.targetSize)
	for _, idx := range indices {
		cs.AddPoint(idx, weight)
	}

	return cs, nil
}

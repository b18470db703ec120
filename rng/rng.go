// Package rng provides the deterministic random source shared by all
// sampling strategies.
//
// A single seeded RNG drives an entire run: identical seed, input and
// parameters reproduce an identical coreset. The generator carries mutable
// state and must not be shared across concurrent strategy runs without
// external serialization.
package rng

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

var (
	// ErrInvalidCount is returned when a sample count exceeds the population
	// or is not positive.
	ErrInvalidCount = errors.New("invalid sample count")

	// ErrInvalidDistribution is returned when a weighted distribution does
	// not sum to one within floating-point tolerance or contains negative
	// probabilities.
	ErrInvalidDistribution = errors.New("invalid probability distribution")
)

// distributionTolerance bounds the accepted deviation of a probability
// distribution's sum from one.
const distributionTolerance = 1e-6

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// New creates a new RNG instance with the specified seed.
func New(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the generator was initialized with.
func (r *RNG) Seed() int64 { return r.seed }

// Intn returns a uniform value in [0, n).
func (r *RNG) Intn(n int) int { return r.rand.Intn(n) }

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.rand.Float64() }

// ChooseWithoutReplacement returns count distinct indices drawn uniformly
// from [0, n) with no repeats.
func (r *RNG) ChooseWithoutReplacement(count, n int) ([]int, error) {
	if count <= 0 || count > n {
		return nil, fmt.Errorf("%w: cannot draw %d distinct indices from a population of %d", ErrInvalidCount, count, n)
	}

	return r.rand.Perm(n)[:count], nil
}

// ChooseWeighted returns count indices drawn independently with replacement,
// where index i is chosen with probability distribution[i]. The distribution
// must sum to one within floating-point tolerance.
func (r *RNG) ChooseWeighted(count int, distribution []float64) ([]int, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidCount, count)
	}
	if len(distribution) == 0 {
		return nil, fmt.Errorf("%w: empty distribution", ErrInvalidDistribution)
	}

	cumulative := make([]float64, len(distribution))
	var sum float64
	for i, p := range distribution {
		if p < 0 || math.IsNaN(p) {
			return nil, fmt.Errorf("%w: probability %g at index %d", ErrInvalidDistribution, p, i)
		}
		sum += p
		cumulative[i] = sum
	}
	if math.Abs(sum-1) > distributionTolerance {
		return nil, fmt.Errorf("%w: probabilities sum to %g, expected 1", ErrInvalidDistribution, sum)
	}

	indices := make([]int, count)
	for j := range indices {
		x := r.rand.Float64() * sum
		// Smallest i with cumulative[i] > x. The strict comparison skips
		// zero-probability entries even when x lands exactly on a boundary.
		i := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > x })
		if i >= len(cumulative) {
			i = len(cumulative) - 1
		}
		indices[j] = i
	}

	return indices, nil
}

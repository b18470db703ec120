// Package bicriteria computes a fast, possibly-suboptimal clustering of the
// input into a bounded number of centers. It exists only to derive per-point
// cost estimates for the importance-based sampling strategies; the quality of
// the approximation bounds the statistical quality of the resulting coreset
// but never causes a failure.
package bicriteria

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/sheikhomar/yace-rw/distance"
	"github.com/sheikhomar/yace-rw/matrix"
	"github.com/sheikhomar/yace-rw/rng"
)

// ErrInvalidCenters is returned when the requested number of centers is not
// positive.
var ErrInvalidCenters = errors.New("number of centers must be positive")

// lloydRounds is the fixed number of refinement rounds run after seeding.
// A constant keeps the stage cheap; looser centers only loosen the coreset's
// cost-preservation guarantee.
const lloydRounds = 2

// Costs runs D²-weighted (k-means++ style) seeding followed by a constant
// number of Lloyd refinement rounds over the point matrix, and returns each
// point's squared L2 distance to its nearest of the k centers.
//
// The computation is a pure function of (m, k) and the state of r; it always
// terminates with some assignment. With k >= N every point is its own center
// and all costs are zero.
func Costs(m *matrix.Matrix, k int, r *rng.RNG) ([]float64, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCenters, k)
	}

	n := m.Rows()
	dim := m.Cols()
	costs := make([]float64, n)

	if k >= n {
		return costs, nil
	}

	centers := make([]float64, 0, k*dim)

	// Seed the first center uniformly, the rest proportional to the current
	// squared distance to the nearest chosen center.
	first := r.Intn(n)
	centers = append(centers, m.Row(first)...)
	for i := 0; i < n; i++ {
		costs[i] = distance.SquaredL2(m.Row(i), m.Row(first))
	}

	dist := make([]float64, n)
	for len(centers) < k*dim {
		var idx int
		total := floats.Sum(costs)
		if total == 0 {
			// Remaining points coincide with chosen centers.
			idx = r.Intn(n)
		} else {
			copy(dist, costs)
			floats.Scale(1/total, dist)
			picks, err := r.ChooseWeighted(1, dist)
			if err != nil {
				return nil, err
			}
			idx = picks[0]
		}

		centers = append(centers, m.Row(idx)...)
		center := m.Row(idx)
		for i := 0; i < n; i++ {
			if d := distance.SquaredL2(m.Row(i), center); d < costs[i] {
				costs[i] = d
			}
		}
	}

	assignments := make([]int, n)
	sums := make([]float64, k*dim)
	counts := make([]int, k)

	for round := 0; round < lloydRounds; round++ {
		assign(m, centers, k, costs, assignments)

		for i := range sums {
			sums[i] = 0
		}
		for i := range counts {
			counts[i] = 0
		}

		for i := 0; i < n; i++ {
			c := assignments[i]
			row := m.Row(i)
			for d := 0; d < dim; d++ {
				sums[c*dim+d] += row[d]
			}
			counts[c]++
		}

		for j := 0; j < k; j++ {
			if counts[j] == 0 {
				// Re-seed empty clusters from the data; the shared RNG keeps
				// this reproducible.
				idx := r.Intn(n)
				copy(centers[j*dim:(j+1)*dim], m.Row(idx))
				continue
			}
			scale := 1 / float64(counts[j])
			for d := 0; d < dim; d++ {
				centers[j*dim+d] = sums[j*dim+d] * scale
			}
		}
	}

	assign(m, centers, k, costs, assignments)

	return costs, nil
}

// assign computes, for every point, the nearest center and its squared
// distance. Points are partitioned into contiguous chunks processed in
// parallel; each chunk writes a disjoint range, so the result does not depend
// on scheduling.
func assign(m *matrix.Matrix, centers []float64, k int, costs []float64, assignments []int) {
	n := m.Rows()
	dim := m.Cols()

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	g := new(errgroup.Group)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				row := m.Row(i)
				best := 0
				bestDist := distance.SquaredL2(row, centers[:dim])
				for j := 1; j < k; j++ {
					if d := distance.SquaredL2(row, centers[j*dim:(j+1)*dim]); d < bestDist {
						bestDist = d
						best = j
					}
				}
				costs[i] = bestDist
				assignments[i] = best
			}
			return nil
		})
	}
	_ = g.Wait()
}

package coreset

import (
	"fmt"
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/sheikhomar/yace-rw/matrix"
	"github.com/sheikhomar/yace-rw/rng"
)

// GroupSampling stratifies points into groups by sensitivity magnitude and
// samples uniformly without replacement within each group. Each sampled point
// receives the group's total sensitivity mass divided by the group's realized
// sample count, so sparse high-sensitivity groups yield larger individual
// weights than dense low-sensitivity ones.
//
// The result may hold fewer than the target number of entries when capped or
// empty groups leave the budget unfilled; that is a smaller coreset, not an
// error.
type GroupSampling struct {
	numCenters       int
	targetSize       int
	beta             int
	groupRangeSize   int
	minimumGroupSize int
	rng              *rng.RNG
	costFunc         CostFunc
}

// NewGroupSampling creates a group sampling strategy. beta is the overall
// sampling budget scaling per-group quotas, groupRangeSize controls how many
// powers of two each sensitivity bucket spans, and minimumGroupSize floors
// every non-empty group's quota.
func NewGroupSampling(numCenters, targetSize, beta, groupRangeSize, minimumGroupSize int, r *rng.RNG, optFns ...func(*Options)) *GroupSampling {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &GroupSampling{
		numCenters:       numCenters,
		targetSize:       targetSize,
		beta:             beta,
		groupRangeSize:   groupRangeSize,
		minimumGroupSize: minimumGroupSize,
		rng:              r,
		costFunc:         opts.CostFunc,
	}
}

// Run samples the coreset.
func (s *GroupSampling) Run(m *matrix.Matrix) (*Coreset, error) {
	n := m.Rows()
	if s.targetSize <= 0 || s.targetSize > n {
		return nil, fmt.Errorf("%w: %d of %d points", ErrInvalidTargetSize, s.targetSize, n)
	}
	if s.numCenters <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNumCenters, s.numCenters)
	}
	if s.beta <= 0 || s.groupRangeSize <= 0 || s.minimumGroupSize <= 0 {
		return nil, fmt.Errorf("%w: beta, group range size and minimum group size must be positive", ErrInvalidTargetSize)
	}

	sens, err := sensitivities(m, s.numCenters, s.rng, s.costFunc)
	if err != nil {
		return nil, err
	}

	groups := s.assignGroups(sens)

	// Ascending group index visits the highest-sensitivity range first, so
	// the points that dominate the cost claim budget before it runs out.
	keys := make([]int, 0, len(groups))
	for g := range groups {
		keys = append(keys, g)
	}
	sort.Ints(keys)

	cs := New(s.targetSize)
	remaining := s.targetSize

	for _, g := range keys {
		if remaining == 0 {
			break
		}

		members := groups[g].ToArray()

		var mass float64
		for _, idx := range members {
			mass += sens[idx]
		}

		quota := int(math.Round(float64(s.beta) * mass))
		if quota < s.minimumGroupSize {
			quota = s.minimumGroupSize
		}
		if quota > len(members) {
			// Sample the whole group; the weight adjusts via the realized
			// count, so an unmet quota never inflates weights.
			quota = len(members)
		}
		if quota > remaining {
			quota = remaining
		}

		picks, err := s.rng.ChooseWithoutReplacement(quota, len(members))
		if err != nil {
			return nil, err
		}

		weight := mass / float64(quota)
		for _, p := range picks {
			cs.AddPoint(int(members[p]), weight)
		}

		remaining -= quota
	}

	return cs, nil
}

// assignGroups partitions point indices into geometric sensitivity buckets:
// group g holds points whose sensitivity falls in (2^(-R*(g+1)), 2^(-R*g)]
// for R = groupRangeSize, so each group spans R powers of two.
// Zero-sensitivity points contribute nothing to the cost and are left out
// entirely.
func (s *GroupSampling) assignGroups(sens []float64) map[int]*roaring.Bitmap {
	groups := make(map[int]*roaring.Bitmap)

	for i, si := range sens {
		if si <= 0 {
			continue
		}

		g := int(math.Floor(math.Log2(1/si) / float64(s.groupRangeSize)))
		if g < 0 {
			g = 0
		}

		bm, ok := groups[g]
		if !ok {
			bm = roaring.New()
			groups[g] = bm
		}
		bm.Add(uint32(i))
	}

	return groups
}

package coreset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhomar/yace-rw/matrix"
	"github.com/sheikhomar/yace-rw/rng"
)

// gridMatrix returns n distinct 2-d points.
func gridMatrix(t *testing.T, n int) *matrix.Matrix {
	t.Helper()

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(i), float64(i % 7)}
	}

	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestUniformSampling(t *testing.T) {
	m := gridMatrix(t, 100)

	cs, err := NewUniformSampling(10, rng.New(42)).Run(m)
	require.NoError(t, err)
	require.Equal(t, 10, cs.Len())

	seen := make(map[int]bool)
	for _, p := range cs.Points() {
		assert.GreaterOrEqual(t, p.Index, 0)
		assert.Less(t, p.Index, 100)
		assert.False(t, seen[p.Index], "index %d sampled twice", p.Index)
		seen[p.Index] = true
		assert.Equal(t, 10.0, p.Weight)
	}
}

func TestUniformSampling_FullPopulation(t *testing.T) {
	m := gridMatrix(t, 25)

	cs, err := NewUniformSampling(25, rng.New(1)).Run(m)
	require.NoError(t, err)
	require.Equal(t, 25, cs.Len())

	for _, p := range cs.Points() {
		assert.Equal(t, 1.0, p.Weight)
	}
}

func TestUniformSampling_InvalidTargetSize(t *testing.T) {
	m := gridMatrix(t, 10)

	_, err := NewUniformSampling(0, rng.New(1)).Run(m)
	assert.ErrorIs(t, err, ErrInvalidTargetSize)

	_, err = NewUniformSampling(11, rng.New(1)).Run(m)
	assert.ErrorIs(t, err, ErrInvalidTargetSize)
}

func TestUniformSampling_Deterministic(t *testing.T) {
	m := gridMatrix(t, 200)

	a, err := NewUniformSampling(20, rng.New(42)).Run(m)
	require.NoError(t, err)

	b, err := NewUniformSampling(20, rng.New(42)).Run(m)
	require.NoError(t, err)

	assert.Equal(t, a.Points(), b.Points())
}

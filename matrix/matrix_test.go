package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, []float64{4, 5, 6}, m.Row(1))
	assert.Equal(t, 3.0, m.At(0, 2))
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := FromRows([][]float64{
		{1, 2},
		{3},
	})
	assert.ErrorIs(t, err, ErrRaggedRows)
}

func TestFromRows_Empty(t *testing.T) {
	_, err := FromRows(nil)
	assert.Error(t, err)
}

func TestFromFlat(t *testing.T) {
	m, err := FromFlat([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, []float64{5, 6}, m.Row(2))
}

func TestFromFlat_ShapeMismatch(t *testing.T) {
	_, err := FromFlat([]float64{1, 2, 3}, 2, 2)
	assert.Error(t, err)

	_, err = FromFlat(nil, 0, 2)
	assert.Error(t, err)
}

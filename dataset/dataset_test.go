package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeGzipFile(t *testing.T, name, content string) string {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestByName(t *testing.T) {
	tests := []struct {
		name     string
		expected any
	}{
		{NameCSV, &CSVParser{}},
		{NameCensus, &CensusParser{}},
		{NameCovertype, &CovertypeParser{}},
		{NameTower, &TowerParser{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ByName(tt.name)
			require.NoError(t, err)
			assert.IsType(t, tt.expected, p)
		})
	}
}

func TestByName_Unknown(t *testing.T) {
	_, err := ByName("mnist")
	assert.ErrorIs(t, err, ErrUnknownDataset)
}

func TestCSVParser(t *testing.T) {
	path := writeFile(t, "points.csv", "1.5,2\n-3,4.25\n\n0,0\n")

	m, err := (&CSVParser{}).Parse(path)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, []float64{-3, 4.25}, m.Row(1))
}

func TestCSVParser_Gzip(t *testing.T) {
	path := writeGzipFile(t, "points.csv.gz", "1,2\n3,4\n")

	m, err := (&CSVParser{}).Parse(path)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, []float64{3, 4}, m.Row(1))
}

func TestCSVParser_Malformed(t *testing.T) {
	path := writeFile(t, "bad.csv", "1,2\noops,4\n")

	_, err := (&CSVParser{}).Parse(path)

	var edf *ErrDataFormat
	require.ErrorAs(t, err, &edf)
	assert.Equal(t, path, edf.Path)
	assert.Equal(t, 2, edf.Line)
}

func TestCSVParser_MissingFile(t *testing.T) {
	_, err := (&CSVParser{}).Parse(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCSVParser_Empty(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := (&CSVParser{}).Parse(path)

	var edf *ErrDataFormat
	assert.ErrorAs(t, err, &edf)
}

func TestCensusParser(t *testing.T) {
	path := writeFile(t, "census.data", "caseid,dAge,dAncstry1\n10000,5,1\n10001,6,2\n")

	m, err := (&CensusParser{}).Parse(path)
	require.NoError(t, err)

	// Header skipped, caseid column dropped.
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, []float64{5, 1}, m.Row(0))
	assert.Equal(t, []float64{6, 2}, m.Row(1))
}

func TestCovertypeParser(t *testing.T) {
	path := writeFile(t, "covtype.data", "2596,51,3,5\n2590,56,2,5\n")

	m, err := (&CovertypeParser{}).Parse(path)
	require.NoError(t, err)

	// Trailing cover-type label dropped.
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, []float64{2596, 51, 3}, m.Row(0))
}

func TestTowerParser(t *testing.T) {
	path := writeFile(t, "tower.txt", "10\n20\n30\n40\n50\n60\n")

	m, err := (&TowerParser{}).Parse(path)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, []float64{10, 20, 30}, m.Row(0))
	assert.Equal(t, []float64{40, 50, 60}, m.Row(1))
}

func TestTowerParser_IncompletePoint(t *testing.T) {
	path := writeFile(t, "tower.txt", "10\n20\n30\n40\n")

	_, err := (&TowerParser{}).Parse(path)

	var edf *ErrDataFormat
	assert.ErrorAs(t, err, &edf)
}

package yace

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhomar/yace-rw/blobstore"
	"github.com/sheikhomar/yace-rw/coreset"
	"github.com/sheikhomar/yace-rw/dataset"
	"github.com/sheikhomar/yace-rw/results"
)

func writePointsFile(t *testing.T, n int) string {
	t.Helper()

	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%d,%d\n", i, i%5)
	}

	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	return path
}

func TestRunner_UniformEndToEnd(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	runner := New(WithStore(store))

	cs, err := runner.Run(ctx, Config{
		Algorithm:   coreset.StrategyUniform,
		Dataset:     dataset.NameCSV,
		DataPath:    writePointsFile(t, 100),
		NumClusters: 5,
		CoresetSize: 10,
		Seed:        42,
	})
	require.NoError(t, err)
	require.Equal(t, 10, cs.Len())

	for _, p := range cs.Points() {
		assert.Equal(t, 10.0, p.Weight)
	}

	// Results file holds one record per entry.
	blob, err := store.Open(ctx, results.FileName(results.CompressionGzip))
	require.NoError(t, err)
	defer blob.Close()

	r, err := results.NewReader(blob, results.CompressionGzip)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.Len(t, strings.Fields(line), 3) // two coordinates plus weight
	}

	// Completion marker follows the results.
	marker, err := store.Open(ctx, results.DoneFileName)
	require.NoError(t, err)
	defer marker.Close()

	content, err := io.ReadAll(marker)
	require.NoError(t, err)
	assert.Equal(t, "done\n", string(content))
}

func TestRunner_SensitivityEndToEnd(t *testing.T) {
	ctx := context.Background()

	runner := New()

	cs, err := runner.Run(ctx, Config{
		Algorithm:   coreset.StrategySensitivity,
		Dataset:     dataset.NameCSV,
		DataPath:    writePointsFile(t, 100),
		NumClusters: 2,
		CoresetSize: 20,
		Seed:        42,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, cs.Len())
}

func TestRunner_Deterministic(t *testing.T) {
	ctx := context.Background()
	path := writePointsFile(t, 80)

	cfg := Config{
		Algorithm:   coreset.StrategyGroup,
		Dataset:     dataset.NameCSV,
		DataPath:    path,
		NumClusters: 3,
		CoresetSize: 16,
		Seed:        7,
	}

	a, err := New().Run(ctx, cfg)
	require.NoError(t, err)

	b, err := New().Run(ctx, cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Points(), b.Points())
}

func TestRunner_UnknownAlgorithm(t *testing.T) {
	runner := New()

	_, err := runner.Run(context.Background(), Config{
		Algorithm:   "reservoir-sampling",
		Dataset:     dataset.NameCSV,
		DataPath:    writePointsFile(t, 10),
		NumClusters: 2,
		CoresetSize: 5,
		Seed:        1,
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRunner_UnknownDataset(t *testing.T) {
	runner := New()

	_, err := runner.Run(context.Background(), Config{
		Algorithm:   coreset.StrategyUniform,
		Dataset:     "mnist",
		DataPath:    "unused",
		NumClusters: 2,
		CoresetSize: 5,
		Seed:        1,
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRunner_InvalidTargetSize(t *testing.T) {
	runner := New()

	_, err := runner.Run(context.Background(), Config{
		Algorithm:   coreset.StrategyUniform,
		Dataset:     dataset.NameCSV,
		DataPath:    writePointsFile(t, 10),
		NumClusters: 2,
		CoresetSize: 11,
		Seed:        1,
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRunner_MalformedDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\nnot-a-number,4\n"), 0o600))

	runner := New()

	_, err := runner.Run(context.Background(), Config{
		Algorithm:   coreset.StrategyUniform,
		Dataset:     dataset.NameCSV,
		DataPath:    path,
		NumClusters: 2,
		CoresetSize: 1,
		Seed:        1,
	})
	assert.ErrorIs(t, err, ErrDataFormat)
}

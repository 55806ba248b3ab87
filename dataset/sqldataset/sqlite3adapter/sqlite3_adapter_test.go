package sqlite3adapter_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/sqldataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/sqldataset/sqlite3adapter"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
)

func testSchema(t *testing.T) *feature.Schema {
	s, err := feature.NewSchema([]feature.Feature{
		feature.NewContinuousFeature("sepal length"),
		feature.NewContinuousFeature("sepal width"),
		feature.NewDiscreteFeature("species", nil),
	}, "species")
	require.NoError(t, err)
	return s
}

func TestWriteRead(t *testing.T) {
	ctx := context.Background()
	a, err := sqlite3adapter.New(filepath.Join(t.TempDir(), "set.db"), "samples")
	require.NoError(t, err)
	defer a.Close()

	// more rows than fit in a single insert statement
	var ds dataset.Dataset
	for i := 0; i < 2*sqldataset.MaxSampleInsertionsPerStatement+3; i++ {
		ds = append(ds, dataset.Row{
			Features: []float64{float64(i) / 4, float64(-i)},
			Label:    fmt.Sprintf("class-%d", i%3),
		})
	}
	n, err := sqldataset.Write(ctx, a, testSchema(t), ds)
	require.NoError(t, err)
	assert.Equal(t, len(ds), n)

	count, err := a.CountSamples(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(ds), count)

	read, err := sqldataset.Read(ctx, a, testSchema(t))
	require.NoError(t, err)
	assert.Equal(t, ds, read)

	// appending keeps previous samples
	_, err = sqldataset.Write(ctx, a, testSchema(t), ds[:2])
	require.NoError(t, err)
	count, err = a.CountSamples(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(ds)+2, count)
}

func TestReadMissingValues(t *testing.T) {
	ctx := context.Background()
	a, err := sqlite3adapter.New(filepath.Join(t.TempDir(), "set.db"), "iris")
	require.NoError(t, err)
	defer a.Close()

	columns := []string{"sepal length", "sepal width"}
	require.NoError(t, a.CreateSampleTable(ctx, columns, "species"))
	_, err = a.AddSamples(ctx, []map[string]interface{}{
		{"sepal length": 1.0, "sepal width": 2.0},
	}, columns, "species")
	require.NoError(t, err)
	_, err = sqldataset.Read(ctx, a, testSchema(t))
	assert.True(t, errors.Is(err, dataset.ErrUnknownLabel), "got %v", err)

	b, err := sqlite3adapter.New(filepath.Join(t.TempDir(), "other.db"), "iris")
	require.NoError(t, err)
	defer b.Close()
	require.NoError(t, b.CreateSampleTable(ctx, columns, "species"))
	_, err = b.AddSamples(ctx, []map[string]interface{}{
		{"sepal length": 1.0, "species": "setosa"},
	}, columns, "species")
	require.NoError(t, err)
	_, err = sqldataset.Read(ctx, b, testSchema(t))
	assert.True(t, errors.Is(err, dataset.ErrNonNumericFeature), "got %v", err)
}

func TestIterateStops(t *testing.T) {
	ctx := context.Background()
	a, err := sqlite3adapter.New(filepath.Join(t.TempDir(), "set.db"), "samples")
	require.NoError(t, err)
	defer a.Close()
	_, err = sqldataset.Write(ctx, a, testSchema(t), dataset.Dataset{
		{Features: []float64{1, 2}, Label: "a"},
		{Features: []float64{3, 4}, Label: "b"},
		{Features: []float64{5, 6}, Label: "c"},
	})
	require.NoError(t, err)
	var seen []string
	err = a.IterateOnSamples(ctx, []string{"sepal length", "sepal width"}, "species", func(i int, rs map[string]interface{}) (bool, error) {
		seen = append(seen, rs["species"].(string))
		return i < 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, seen)
}

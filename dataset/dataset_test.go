package dataset_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
)

func TestLabelsKeepFirstSeenOrder(t *testing.T) {
	ds := dataset.Dataset{
		{Features: []float64{1}, Label: "b"},
		{Features: []float64{2}, Label: "a"},
		{Features: []float64{3}, Label: "b"},
		{Features: []float64{4}, Label: "c"},
	}
	assert.Equal(t, []string{"b", "a", "c"}, ds.Labels())
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 1}, ds.CountLabels())
	assert.Equal(t, 4, ds.Count())
	assert.Equal(t, 1, ds.FeatureCount())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		ds   dataset.Dataset
		err  error
	}{
		{"empty", dataset.Dataset{}, dataset.ErrEmptyDataset},
		{"empty row", dataset.Dataset{{Label: "a"}}, dataset.ErrEmptyRow},
		{"inconsistent", dataset.Dataset{
			{Features: []float64{1, 2}, Label: "a"},
			{Features: []float64{1}, Label: "b"},
		}, dataset.ErrInconsistentFeatureCount},
		{"nan", dataset.Dataset{
			{Features: []float64{1, math.NaN()}, Label: "a"},
		}, dataset.ErrNonNumericFeature},
		{"valid", dataset.Dataset{
			{Features: []float64{1, 2}, Label: "a"},
			{Features: []float64{3, math.Inf(1)}, Label: "b"},
		}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.ds.Validate()
			if c.err == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.err), "expected %v, got %v", c.err, err)
			var ie dataset.InputError
			assert.True(t, errors.As(err, &ie))
		})
	}
}

func TestRowFromValues(t *testing.T) {
	r, err := dataset.RowFromValues([]interface{}{1, int64(2), "3.5", []byte("4"), 0.5, "A"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3.5, 4, 0.5}, r.Features)
	assert.Equal(t, "A", r.Label)

	r, err = dataset.RowFromValues([]interface{}{1.0, 2.0})
	require.NoError(t, err)
	assert.Equal(t, "2", r.Label)

	_, err = dataset.RowFromValues([]interface{}{"x", "A"})
	assert.True(t, errors.Is(err, dataset.ErrNonNumericFeature))

	_, err = dataset.RowFromValues([]interface{}{"NaN", "A"})
	assert.True(t, errors.Is(err, dataset.ErrNonNumericFeature))

	_, err = dataset.RowFromValues([]interface{}{1.0, nil})
	assert.True(t, errors.Is(err, dataset.ErrUnknownLabel))

	_, err = dataset.RowFromValues([]interface{}{"A"})
	assert.True(t, errors.Is(err, dataset.ErrEmptyRow))
}

package json

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
)

func testSchema(t *testing.T) *feature.Schema {
	s, err := feature.NewSchema([]feature.Feature{
		feature.NewContinuousFeature("x0"),
		feature.NewContinuousFeature("x1"),
		feature.NewDiscreteFeature("label", []string{"A", "B"}),
	}, "label")
	require.NoError(t, err)
	return s
}

func TestDecode(t *testing.T) {
	ed := New(testSchema(t))

	r, err := ed.Decode([]byte(`{"label":"B","x1":1e-3,"x0":12345678901234567890,"note":"ignored"}`))
	require.NoError(t, err)
	assert.Equal(t, dataset.Row{Features: []float64{12345678901234567890, 0.001}, Label: "B"}, r)

	_, err = ed.Decode([]byte(`{"label":"B","x1":"a","x0":1}`))
	assert.True(t, errors.Is(err, dataset.ErrNonNumericFeature))
	_, err = ed.Decode([]byte(`{"label":"C","x1":0,"x0":1}`))
	assert.True(t, errors.Is(err, dataset.ErrUnknownLabel))
	_, err = ed.Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	ed := New(testSchema(t))
	data, err := ed.Encode(dataset.Row{Features: []float64{1.5, -2}, Label: "A"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x0":1.5,"x1":-2,"label":"A"}`, string(data))

	_, err = ed.Encode(dataset.Row{Features: []float64{1}, Label: "A"})
	assert.True(t, errors.Is(err, dataset.ErrInconsistentFeatureCount))
	_, err = ed.Encode(dataset.Row{Features: []float64{math.Inf(1), 0}, Label: "A"})
	assert.Error(t, err, "JSON has no infinities")
}

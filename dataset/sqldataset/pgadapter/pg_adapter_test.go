package pgadapter_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/sqldataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/sqldataset/pgadapter"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
)

func TestWriteRead(t *testing.T) {
	url := os.Getenv("CART_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("CART_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()
	table := fmt.Sprintf("samples_%d", time.Now().UnixNano())
	a, err := pgadapter.New(url, table)
	require.NoError(t, err)
	defer a.Close()

	schema, err := feature.NewSchema([]feature.Feature{
		feature.NewContinuousFeature("x0"),
		feature.NewDiscreteFeature("label", nil),
	}, "label")
	require.NoError(t, err)
	var ds dataset.Dataset
	for i := 0; i < 15; i++ {
		ds = append(ds, dataset.Row{Features: []float64{float64(i) * 0.5}, Label: fmt.Sprint(i % 2)})
	}
	n, err := sqldataset.Write(ctx, a, schema, ds)
	require.NoError(t, err)
	assert.Equal(t, len(ds), n)

	read, err := sqldataset.Read(ctx, a, schema)
	require.NoError(t, err)
	assert.Equal(t, ds, read)
}

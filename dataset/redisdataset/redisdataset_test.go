package redisdataset

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redis "gopkg.in/redis.v5"

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

func TestNew(t *testing.T) {
	_, err := New(nil, "", testSchema(t))
	assert.Error(t, err)
	rds, err := New(nil, "samples", testSchema(t))
	require.NoError(t, err)
	r, err := rds.Decode([]byte(`{"x0":1,"x1":2,"label":"A"}`))
	require.NoError(t, err)
	assert.Equal(t, dataset.Row{Features: []float64{1, 2}, Label: "A"}, r)
}

func TestWriteRead(t *testing.T) {
	url := os.Getenv("CART_TEST_REDIS_URL")
	if url == "" {
		t.Skip("CART_TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	rc := redis.NewClient(opts)
	defer rc.Close()

	key := fmt.Sprintf("cart:test:%d", time.Now().UnixNano())
	defer rc.Del(key)
	rds, err := New(rc, key, testSchema(t))
	require.NoError(t, err)

	ctx := context.Background()
	var ds dataset.Dataset
	for i := 0; i < readPageSize+7; i++ {
		label := "A"
		if i%2 == 1 {
			label = "B"
		}
		ds = append(ds, dataset.Row{Features: []float64{float64(i), float64(i) / 8}, Label: label})
	}
	n, err := rds.Write(ctx, ds)
	require.NoError(t, err)
	assert.Equal(t, len(ds), n)
	count, err := rds.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(ds), count)

	read, err := rds.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, ds, read)
}

package mongodataset_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mgo "gopkg.in/mgo.v2"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/mongodataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
)

func testSchema(t *testing.T, names ...string) *feature.Schema {
	var features []feature.Feature
	for _, n := range names {
		features = append(features, feature.NewContinuousFeature(n))
	}
	features = append(features, feature.NewDiscreteFeature("label", nil))
	s, err := feature.NewSchema(features, "label")
	require.NoError(t, err)
	return s
}

func TestOpenRejectsFieldNames(t *testing.T) {
	for _, name := range []string{"_id", "a.b", "$x"} {
		_, err := mongodataset.Open(nil, "samples", testSchema(t, name))
		assert.Error(t, err, name)
	}
	_, err := mongodataset.Open(nil, "", testSchema(t, "x"))
	assert.Error(t, err)
}

func TestWriteRead(t *testing.T) {
	url := os.Getenv("CART_TEST_MONGO_URL")
	if url == "" {
		t.Skip("CART_TEST_MONGO_URL not set")
	}
	session, err := mgo.Dial(url)
	require.NoError(t, err)
	defer session.Close()

	collection := fmt.Sprintf("samples_%d", time.Now().UnixNano())
	defer session.DB("").C(collection).DropCollection()
	mds, err := mongodataset.Open(session, collection, testSchema(t, "x0", "x1"))
	require.NoError(t, err)

	ctx := context.Background()
	ds := dataset.Dataset{
		{Features: []float64{1, 0}, Label: "A"},
		{Features: []float64{2.5, 0}, Label: "A"},
		{Features: []float64{1, -1}, Label: "B"},
	}
	n, err := mds.Write(ctx, ds)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	count, err := mds.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	read, err := mds.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, ds, read)
}

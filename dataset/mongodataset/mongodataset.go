/*
Package mongodataset reads and writes datasets stored as documents of a
MongoDB collection, one document per sample with a field for every feature.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Dataset gives access to the samples stored on a MongoDB collection.
*/
type Dataset struct {
	session    *mgo.Session
	collection string
	schema     *feature.Schema
}

/*
Open takes a MongoDB database session, the name of a collection on the default
database for that session and a feature.Schema and returns a Dataset working
on the collection, or an error if the schema has feature names that cannot be
used as document fields.
*/
func Open(session *mgo.Session, collection string, schema *feature.Schema) (*Dataset, error) {
	if collection == "" {
		return nil, fmt.Errorf("empty collection name")
	}
	for _, name := range schema.Names() {
		if name == "_id" {
			return nil, fmt.Errorf("invalid feature name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(name, ".$") {
			return nil, fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", name, ".", "$")
		}
	}
	return &Dataset{session, collection, schema}, nil
}

/*
Read returns the dataset made of the documents on the collection, in natural
order, or an error if any of them is not a valid sample for the schema.
*/
func (mds *Dataset) Read(ctx context.Context) (dataset.Dataset, error) {
	var ds dataset.Dataset
	var doc bson.M
	iter := mds.samplesCollection().Find(bson.M{}).Sort("$natural").Iter()
	defer iter.Close()
	for i := 0; iter.Next(&doc); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := mds.schema.Row(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		ds = append(ds, r)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}

/*
Write inserts a document for each row of the given dataset on the collection
and returns the number of documents inserted.
*/
func (mds *Dataset) Write(ctx context.Context, ds dataset.Dataset) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	names := mds.schema.FeatureNames()
	docs := make([]interface{}, 0, len(ds))
	for i, r := range ds {
		if len(r.Features) != len(names) {
			return 0, fmt.Errorf("row %d: %w: %d features, expected %d", i, dataset.ErrInconsistentFeatureCount, len(r.Features), len(names))
		}
		doc := make(bson.M, len(names)+1)
		for j, name := range names {
			doc[name] = r.Features[j]
		}
		doc[mds.schema.Class().Name()] = r.Label
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	if err := mds.samplesCollection().Insert(docs...); err != nil {
		return 0, err
	}
	return len(docs), nil
}

// Count returns the number of documents on the collection.
func (mds *Dataset) Count(context.Context) (int, error) {
	return mds.samplesCollection().Count()
}

func (mds *Dataset) samplesCollection() *mgo.Collection {
	return mds.session.DB("").C(mds.collection)
}

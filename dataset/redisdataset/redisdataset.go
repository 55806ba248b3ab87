/*
Package redisdataset reads and writes datasets stored on a Redis list, with
every sample encoded as a JSON object mapping feature names to values.
*/
package redisdataset

import (
	"context"
	"fmt"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/json"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
	redis "gopkg.in/redis.v5"
)

// Samples are read from the list in pages of this size.
const readPageSize = 500

/*
Dataset gives access to the samples stored on a Redis list.
*/
type Dataset struct {
	rc  *redis.Client
	key string
	json.RowEncodeDecoder
}

/*
New takes a redis client, the key of a list and a feature.Schema and returns
a Dataset working on that list.
*/
func New(rc *redis.Client, key string, schema *feature.Schema) (*Dataset, error) {
	if key == "" {
		return nil, fmt.Errorf("empty redis key")
	}
	return &Dataset{rc, key, json.New(schema)}, nil
}

/*
Read returns the dataset made of the samples on the list, in list order, or
an error if any of them cannot be decoded or is not a valid sample for the
schema.
*/
func (rds *Dataset) Read(ctx context.Context) (dataset.Dataset, error) {
	var ds dataset.Dataset
	for start := int64(0); ; start += readPageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		encoded, err := rds.rc.LRange(rds.key, start, start+readPageSize-1).Result()
		if err != nil {
			return nil, fmt.Errorf("reading samples from %s: %w", rds.key, err)
		}
		for i, e := range encoded {
			r, err := rds.Decode([]byte(e))
			if err != nil {
				return nil, fmt.Errorf("sample %d: %w", int(start)+i, err)
			}
			ds = append(ds, r)
		}
		if len(encoded) < readPageSize {
			return ds, nil
		}
	}
}

/*
Write appends the rows of the given dataset to the list and returns the number
of samples appended.
*/
func (rds *Dataset) Write(ctx context.Context, ds dataset.Dataset) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	encoded := make([]interface{}, 0, len(ds))
	for i, r := range ds {
		data, err := rds.Encode(r)
		if err != nil {
			return 0, fmt.Errorf("encoding row %d: %w", i, err)
		}
		encoded = append(encoded, string(data))
	}
	if len(encoded) == 0 {
		return 0, nil
	}
	if err := rds.rc.RPush(rds.key, encoded...).Err(); err != nil {
		return 0, fmt.Errorf("writing samples to %s: %w", rds.key, err)
	}
	return len(encoded), nil
}

// Count returns the number of samples on the list.
func (rds *Dataset) Count(context.Context) (int, error) {
	n, err := rds.rc.LLen(rds.key).Result()
	return int(n), err
}

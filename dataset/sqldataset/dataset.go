package sqldataset

import (
	"context"
	"fmt"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
)

/*
Read takes an Adapter and a feature.Schema and returns the dataset made of the
samples stored through the adapter, in insertion order, or an error.
*/
func Read(ctx context.Context, a Adapter, schema *feature.Schema) (dataset.Dataset, error) {
	featureColumns, labelColumn, err := columns(a, schema)
	if err != nil {
		return nil, err
	}
	var ds dataset.Dataset
	err = a.IterateOnSamples(ctx, featureColumns, labelColumn, func(i int, rawSample map[string]interface{}) (bool, error) {
		values := make(map[string]interface{}, len(rawSample))
		for j, f := range schema.FeatureNames() {
			if v, ok := rawSample[featureColumns[j]]; ok {
				values[f] = v
			}
		}
		if v, ok := rawSample[labelColumn]; ok {
			values[schema.Class().Name()] = v
		}
		r, err := schema.Row(values)
		if err != nil {
			return false, fmt.Errorf("sample %d: %w", i, err)
		}
		ds = append(ds, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

/*
Write takes an Adapter, a feature.Schema and a dataset, ensures the samples
table exists and adds the rows of the dataset to it. It returns the number of
rows added and an error if not all of them could be.
*/
func Write(ctx context.Context, a Adapter, schema *feature.Schema, ds dataset.Dataset) (int, error) {
	featureColumns, labelColumn, err := columns(a, schema)
	if err != nil {
		return 0, err
	}
	if err = a.CreateSampleTable(ctx, featureColumns, labelColumn); err != nil {
		return 0, err
	}
	rawSamples := make([]map[string]interface{}, 0, len(ds))
	for i, r := range ds {
		if len(r.Features) != len(featureColumns) {
			return 0, fmt.Errorf("row %d: %w: %d features, expected %d", i, dataset.ErrInconsistentFeatureCount, len(r.Features), len(featureColumns))
		}
		rawSample := make(map[string]interface{}, len(featureColumns)+1)
		for j, c := range featureColumns {
			rawSample[c] = r.Features[j]
		}
		rawSample[labelColumn] = r.Label
		rawSamples = append(rawSamples, rawSample)
	}
	return a.AddSamples(ctx, rawSamples, featureColumns, labelColumn)
}

func columns(a Adapter, schema *feature.Schema) ([]string, string, error) {
	names := schema.FeatureNames()
	featureColumns := make([]string, 0, len(names))
	for _, name := range names {
		c, err := a.ColumnName(name)
		if err != nil {
			return nil, "", err
		}
		featureColumns = append(featureColumns, c)
	}
	labelColumn, err := a.ColumnName(schema.Class().Name())
	if err != nil {
		return nil, "", err
	}
	return featureColumns, labelColumn, nil
}

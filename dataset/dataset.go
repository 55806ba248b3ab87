package dataset

import (
	"fmt"
	"math"
)

/*
Row represents a sample: an ordered sequence of numeric feature values and the
label it is classified as. Rows are shared between datasets and subsets of
them, so they must not be modified once created.
*/
type Row struct {
	Features []float64
	Label    string
}

// Dataset is a sequence of rows.
type Dataset []Row

// Count returns the number of rows in the dataset.
func (ds Dataset) Count() int {
	return len(ds)
}

// FeatureCount returns the number of feature values of the first row of the
// dataset, or 0 if it has none.
func (ds Dataset) FeatureCount() int {
	if len(ds) == 0 {
		return 0
	}
	return len(ds[0].Features)
}

/*
Labels returns the distinct labels of the rows in the dataset, in the order
they are first encountered.
*/
func (ds Dataset) Labels() []string {
	var labels []string
	seen := make(map[string]bool)
	for _, r := range ds {
		if !seen[r.Label] {
			seen[r.Label] = true
			labels = append(labels, r.Label)
		}
	}
	return labels
}

// CountLabels returns the number of rows in the dataset for each label.
func (ds Dataset) CountLabels() map[string]int {
	counts := make(map[string]int)
	for _, r := range ds {
		counts[r.Label]++
	}
	return counts
}

/*
Validate checks the dataset can be used for training. It returns an error
wrapping ErrEmptyDataset when there are no rows, ErrEmptyRow when a row has no
features, ErrInconsistentFeatureCount when rows disagree on the number of
features and ErrNonNumericFeature when a feature value is NaN.
*/
func (ds Dataset) Validate() error {
	if len(ds) == 0 {
		return ErrEmptyDataset
	}
	n := ds.FeatureCount()
	for i, r := range ds {
		if err := ValidateFeatures(r.Features, n); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

/*
ValidateFeatures takes a slice of feature values and the number of features
expected and returns an error if the slice is empty, has a different length or
holds a NaN value.
*/
func ValidateFeatures(features []float64, expected int) error {
	if len(features) == 0 {
		return ErrEmptyRow
	}
	if len(features) != expected {
		return fmt.Errorf("%w: expected %d features, got %d", ErrInconsistentFeatureCount, expected, len(features))
	}
	for j, v := range features {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: feature %d is NaN", ErrNonNumericFeature, j)
		}
	}
	return nil
}

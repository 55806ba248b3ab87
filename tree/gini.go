package tree

import "github.com/YuZhangIsCoding/ML-SelfLearning/dataset"

/*
Gini takes a dataset and returns its Gini index: 1 minus the sum of the
squared proportions of each label among its rows. It is 0 for an empty dataset
and for datasets whose rows all share a label.
*/
func Gini(rows dataset.Dataset) float64 {
	if len(rows) == 0 {
		return 0
	}
	counts := rows.CountLabels()
	total := float64(len(rows))
	result := 1.0
	// labels in first-seen order keep the float sum reproducible
	for _, label := range rows.Labels() {
		p := float64(counts[label]) / total
		result -= p * p
	}
	return result
}

// weightedGini returns the Gini index of a partition of total rows into
// left and right, weighted by the size of each side.
func weightedGini(left, right dataset.Dataset, total int) float64 {
	return (float64(len(left))*Gini(left) + float64(len(right))*Gini(right)) / float64(total)
}

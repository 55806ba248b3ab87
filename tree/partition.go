package tree

import "github.com/YuZhangIsCoding/ML-SelfLearning/dataset"

/*
Partition takes a feature index, a threshold and a dataset and splits the
dataset in two: left holds the rows whose value for the feature is below the
threshold, right the rest. Both keep the relative order of the rows in the
given dataset, which is not modified.
*/
func Partition(index int, threshold float64, rows dataset.Dataset) (left, right dataset.Dataset) {
	for _, r := range rows {
		if goesLeft(r.Features[index], threshold) {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	return left, right
}

func goesLeft(value, threshold float64) bool {
	return value < threshold
}

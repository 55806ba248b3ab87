package tree

import (
	"fmt"
	"math"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
)

// Split is a candidate split of a node's rows on a feature threshold.
type Split struct {
	// Index of the feature the split is on.
	Index int
	// Threshold separating rows: values below it go left, the rest right.
	Threshold float64
	// Impurity is the size-weighted Gini index of both sides.
	Impurity float64
	// Left and Right are the rows on each side of the split.
	Left, Right dataset.Dataset
}

func (s *Split) String() string {
	return fmt.Sprintf("x[%d] < %g (gini %.4f)", s.Index, s.Threshold, s.Impurity)
}

// degenerate reports whether the split leaves one of its sides empty.
func (s *Split) degenerate() bool {
	return len(s.Left) == 0 || len(s.Right) == 0
}

/*
FindBestSplit returns the split of the node's rows with the lowest weighted
Gini index, or nil if the rows have no features. It does not modify the node.

Every feature is tried with every row's value for it as threshold, in feature
index order and then row order, duplicate values included. The best split is
only replaced on a strictly lower impurity, so the first of several equally
good splits wins.
*/
func (n *Node) FindBestSplit() *Split {
	var best *Split
	bestImpurity := math.Inf(1)
	for index := 0; index < n.rows.FeatureCount(); index++ {
		for _, r := range n.rows {
			threshold := r.Features[index]
			left, right := Partition(index, threshold, n.rows)
			impurity := weightedGini(left, right, len(n.rows))
			if impurity < bestImpurity {
				bestImpurity = impurity
				best = &Split{
					Index:     index,
					Threshold: threshold,
					Impurity:  impurity,
					Left:      left,
					Right:     right,
				}
			}
		}
	}
	return best
}

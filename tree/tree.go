package tree

import (
	"fmt"
	"strings"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
)

const (
	// ErrInvalidMaxDepth is returned when training with a negative maximum
	// depth.
	ErrInvalidMaxDepth = dataset.InputError("maximum depth must not be negative")
	// ErrInvalidMinSize is returned when training with a minimum node size
	// below 1.
	ErrInvalidMinSize = dataset.InputError("minimum node size must be positive")
	// ErrUntrained is returned when predicting with a tree that has not been
	// trained.
	ErrUntrained = dataset.InputError("tree has not been trained")
)

/*
Tree represents a classification tree. The zero value is an untrained tree;
use its Train method to grow it from a dataset.

A trained tree is never modified by predictions and can be used by multiple
goroutines at a time.
*/
type Tree struct {
	root         *Node
	maxDepth     int
	minSize      int
	featureCount int
}

/*
Train takes a dataset, a maximum depth and a minimum node size and grows the
tree from the dataset, replacing whatever the tree held before. The root is at
depth 0.

A node becomes a leaf when it reaches the maximum depth, when it has at most
minSize rows or when all its rows share a label. Otherwise it is developed on
the split returned by its FindBestSplit method, unless that split would leave
one of its sides empty (which only happens when no threshold separates its
rows), in which case it becomes a leaf too.

An error is returned if the dataset does not pass its Validate method, if
maxDepth is negative or if minSize is below 1. The tree is left untouched in
that case.
*/
func (t *Tree) Train(ds dataset.Dataset, maxDepth, minSize int) error {
	if maxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxDepth, maxDepth)
	}
	if minSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMinSize, minSize)
	}
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("training tree: %w", err)
	}
	root, err := NewNode(ds)
	if err != nil {
		return fmt.Errorf("training tree: %w", err)
	}
	grown := &Tree{
		root:         root,
		maxDepth:     maxDepth,
		minSize:      minSize,
		featureCount: ds.FeatureCount(),
	}
	if err = grown.develop(root, 0); err != nil {
		return fmt.Errorf("training tree: %w", err)
	}
	*t = *grown
	return nil
}

func (t *Tree) develop(n *Node, depth int) error {
	if depth == t.maxDepth || n.Size() <= t.minSize {
		n.CollapseToTerminal()
		return nil
	}
	if n.IsLeaf() {
		return nil
	}
	s := n.FindBestSplit()
	if s == nil || s.degenerate() {
		n.CollapseToTerminal()
		return nil
	}
	if err := n.commit(s); err != nil {
		return err
	}
	if err := t.develop(n.left, depth+1); err != nil {
		return err
	}
	return t.develop(n.right, depth+1)
}

// Root returns the root node of the tree, or nil if it is untrained.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// MaxDepth returns the maximum depth the tree was trained with.
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// MinSize returns the minimum node size the tree was trained with.
func (t *Tree) MinSize() int {
	return t.minSize
}

// FeatureCount returns the number of features of the samples the tree
// was trained with and can predict.
func (t *Tree) FeatureCount() int {
	return t.featureCount
}

/*
Predict takes a slice of feature vectors and returns the label predicted for
each, in the same order. An error is returned, and no labels, if the tree is
untrained or any of the vectors is not valid for it (see PredictRow).
*/
func (t *Tree) Predict(rows [][]float64) ([]string, error) {
	labels := make([]string, 0, len(rows))
	for i, features := range rows {
		label, err := t.PredictRow(features)
		if err != nil {
			return nil, fmt.Errorf("predicting row %d: %w", i, err)
		}
		labels = append(labels, label)
	}
	return labels, nil
}

/*
PredictRow takes a feature vector and returns the label of the leaf it
reaches going down from the root: left when its value for a node's split
feature is below the split threshold, right otherwise.

An error is returned if the tree is untrained, or if the vector does not have
as many features as the training rows or holds a NaN.
*/
func (t *Tree) PredictRow(features []float64) (string, error) {
	if t == nil || t.root == nil {
		return "", ErrUntrained
	}
	if err := dataset.ValidateFeatures(features, t.featureCount); err != nil {
		return "", err
	}
	n := t.root
	for !n.leaf {
		n = n.next(features)
	}
	return n.terminal, nil
}

/*
Test takes a labelled dataset and returns the rate of its rows for which the
tree predicts the right label, or an error if a prediction cannot be made.
*/
func (t *Tree) Test(ds dataset.Dataset) (float64, error) {
	if len(ds) == 0 {
		return 0, dataset.ErrEmptyDataset
	}
	var hits int
	for i, r := range ds {
		label, err := t.PredictRow(r.Features)
		if err != nil {
			return 0, fmt.Errorf("testing row %d: %w", i, err)
		}
		if label == r.Label {
			hits++
		}
	}
	return float64(hits) / float64(len(ds)), nil
}

/*
Traverse takes a bottomup boolean and an error-returning function that takes a
node and its depth, and goes through the tree calling the function for every
node. The function is called for a parent before its children if bottomup is
false, and after them if it is true. Left children are visited before right
ones. If the function returns an error, the traversal is aborted and the error
returned.
*/
func (t *Tree) Traverse(bottomup bool, f func(n *Node, depth int) error) error {
	if t == nil || t.root == nil {
		return ErrUntrained
	}
	return traverse(t.root, 0, bottomup, f)
}

func traverse(n *Node, depth int, bottomup bool, f func(*Node, int) error) error {
	if !bottomup {
		if err := f(n, depth); err != nil {
			return err
		}
	}
	for _, c := range []*Node{n.left, n.right} {
		if c == nil {
			continue
		}
		if err := traverse(c, depth+1, bottomup, f); err != nil {
			return err
		}
	}
	if bottomup {
		return f(n, depth)
	}
	return nil
}

// Depth returns the depth of the deepest leaf of the tree, 0 for an
// untrained tree.
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(false, func(n *Node, d int) error {
		if d > depth {
			depth = d
		}
		return nil
	})
	return depth
}

// LeafCount returns the number of leaves of the tree.
func (t *Tree) LeafCount() int {
	var count int
	t.Traverse(false, func(n *Node, _ int) error {
		if n.leaf {
			count++
		}
		return nil
	})
	return count
}

func (t *Tree) String() string {
	return t.Format(nil)
}

/*
Format returns a multiline representation of the tree, naming features after
the given names when available and as x[i] otherwise.
*/
func (t *Tree) Format(names []string) string {
	if t == nil || t.root == nil {
		return "<untrained tree>\n"
	}
	return subtreeString(t.root, names)
}

func subtreeString(n *Node, names []string) string {
	var result string
	if n.leaf {
		result = fmt.Sprintf("{ %s } (%d samples)\n", n.terminal, len(n.rows))
	} else {
		result = fmt.Sprintf("[ %s < %g ] (%d samples, gini %.4f)\n|\n", featureName(n.split.Index, names), n.split.Threshold, len(n.rows), n.Gini())
	}
	children := []*Node{n.left, n.right}
	for i, c := range children {
		if c == nil {
			continue
		}
		for j, line := range strings.Split(subtreeString(c, names), "\n") {
			if len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s\n", result, line)
			case i == len(children)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}

func featureName(index int, names []string) string {
	if index < len(names) {
		return names[index]
	}
	return fmt.Sprintf("x[%d]", index)
}

package tree

import (
	"fmt"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
)

/*
Node is a node of the tree: a partition of the training rows.

A node is either a leaf, holding the label it predicts, or an internal node,
holding the split applied to its rows and the two nodes its sides were
developed into.
*/
type Node struct {
	rows dataset.Dataset
	// The split on which the node was developed, nil for leaves and
	// undeveloped nodes.
	split *Split
	// Nodes for the rows below and above the split threshold.
	left, right *Node
	// The predicted label, only meaningful when leaf is true.
	terminal string
	leaf     bool
}

/*
NewNode takes a non-empty dataset and returns a node for it. If all its rows
share a label, the node is a leaf predicting it from the start. An error
wrapping dataset.ErrEmptyDataset is returned for an empty dataset.
*/
func NewNode(rows dataset.Dataset) (*Node, error) {
	if len(rows) == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	n := &Node{rows: rows}
	if len(rows.Labels()) == 1 {
		n.CollapseToTerminal()
	}
	return n, nil
}

/*
CollapseToTerminal makes the node a leaf predicting the most frequent label
among its rows. When several labels are equally frequent, the one found first
in the node's rows is chosen.
*/
func (n *Node) CollapseToTerminal() {
	labels := n.rows.Labels()
	counts := n.rows.CountLabels()
	terminal := labels[0]
	for _, label := range labels[1:] {
		if counts[label] > counts[terminal] {
			terminal = label
		}
	}
	n.terminal = terminal
	n.leaf = true
	n.split = nil
	n.left, n.right = nil, nil
}

// commit develops the node on the given split, creating a node for each of
// its sides.
func (n *Node) commit(s *Split) error {
	left, err := NewNode(s.Left)
	if err != nil {
		return fmt.Errorf("developing left side of %v: %w", s, err)
	}
	right, err := NewNode(s.Right)
	if err != nil {
		return fmt.Errorf("developing right side of %v: %w", s, err)
	}
	n.split = s
	n.left, n.right = left, right
	return nil
}

// Rows returns the training rows of the node.
func (n *Node) Rows() dataset.Dataset {
	return n.rows
}

// Size returns the number of training rows of the node.
func (n *Node) Size() int {
	return len(n.rows)
}

// Gini returns the Gini index of the node's rows.
func (n *Node) Gini() float64 {
	return Gini(n.rows)
}

// IsLeaf reports whether the node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Terminal returns the label predicted by the node and true if the node is
// a leaf, or an empty string and false otherwise.
func (n *Node) Terminal() (string, bool) {
	return n.terminal, n.leaf
}

// Split returns the split the node was developed on, or nil.
func (n *Node) Split() *Split {
	return n.split
}

// Left returns the node for the rows below the split threshold, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the node for the rows at or above the split threshold, or nil.
func (n *Node) Right() *Node {
	return n.right
}

func (n *Node) next(features []float64) *Node {
	if goesLeft(features[n.split.Index], n.split.Threshold) {
		return n.left
	}
	return n.right
}

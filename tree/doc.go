/*
Package tree grows binary classification trees by greedy recursive
partitioning of a dataset (CART) using the Gini index as impurity criterion,
and uses them to predict the label of samples.

Growing is bounded by a maximum depth and a minimum node size. Given the same
dataset and bounds, the grown tree is always the same: among equally good
splits the first one tried is kept, and ties between majority labels go to the
label found first in the node's rows.
*/
package tree

/*
Package dataset defines the tabular contract shared by the tree learner and
the loaders of training data: rows of numeric feature values followed by a
discrete label.

Subpackages provide ways to read and write datasets from CSV streams, SQL
databases, MongoDB collections and Redis lists.
*/
package dataset

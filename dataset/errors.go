package dataset

// InputError represents a violation of the preconditions on the data
// handed to the learner or to a trained tree. It is never recovered from:
// callers get it back synchronously from the call that received the input.
type InputError string

const (
	// ErrEmptyDataset is returned when a dataset without rows is used to
	// train a tree or build a node.
	ErrEmptyDataset = InputError("empty dataset")
	// ErrEmptyRow is returned for rows that carry no feature values.
	ErrEmptyRow = InputError("row has no feature values")
	// ErrInconsistentFeatureCount is returned when a row does not have the
	// same number of feature values as the rest of the dataset, or as the
	// data a tree was trained with.
	ErrInconsistentFeatureCount = InputError("inconsistent feature count")
	// ErrNonNumericFeature is returned when a feature value is not a number.
	ErrNonNumericFeature = InputError("non-numeric feature value")
	// ErrUnknownLabel is returned when a label is missing or not among the
	// values declared for the class feature.
	ErrUnknownLabel = InputError("invalid label")
)

func (ie InputError) Error() string {
	return string(ie)
}

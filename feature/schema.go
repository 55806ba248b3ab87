package feature

import (
	"fmt"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
)

/*
Schema is the layout of the rows of a dataset: the continuous features, in
the order their values appear in a row, followed by the discrete class
feature used as label.
*/
type Schema struct {
	features []*ContinuousFeature
	class    *DiscreteFeature
}

/*
NewSchema takes a slice of features and the name of the class feature and
returns a schema with the rest of the features, in the given order, followed
by the class feature. It returns an error if the class feature is not among
the features or is not discrete, if any other feature is not continuous, or
if there are no features left to split on.
*/
func NewSchema(features []Feature, className string) (*Schema, error) {
	s := &Schema{}
	for _, f := range features {
		if f.Name() == className {
			df, ok := f.(*DiscreteFeature)
			if !ok {
				return nil, fmt.Errorf("class feature %s must be discrete, got %T", className, f)
			}
			s.class = df
			continue
		}
		cf, ok := f.(*ContinuousFeature)
		if !ok {
			return nil, fmt.Errorf("feature %s must be continuous, got %T", f.Name(), f)
		}
		s.features = append(s.features, cf)
	}
	if s.class == nil {
		return nil, fmt.Errorf("class feature '%s' is not defined", className)
	}
	if len(s.features) == 0 {
		return nil, fmt.Errorf("no features besides class feature '%s'", className)
	}
	return s, nil
}

// Features returns the continuous features of the schema in row order.
func (s *Schema) Features() []*ContinuousFeature {
	return s.features
}

// Class returns the class feature of the schema.
func (s *Schema) Class() *DiscreteFeature {
	return s.class
}

// FeatureNames returns the names of the continuous features in row order.
func (s *Schema) FeatureNames() []string {
	names := make([]string, len(s.features))
	for i, f := range s.features {
		names[i] = f.Name()
	}
	return names
}

// Names returns the names of the continuous features in row order followed
// by the name of the class feature.
func (s *Schema) Names() []string {
	return append(s.FeatureNames(), s.class.Name())
}

/*
Row takes a map of feature names to values and returns the row they make up
according to the schema. Missing or non-numeric feature values result in an
error wrapping dataset.ErrNonNumericFeature; missing labels or labels not
accepted by the class feature in one wrapping dataset.ErrUnknownLabel.
*/
func (s *Schema) Row(values map[string]interface{}) (dataset.Row, error) {
	features, err := s.FeatureValues(values)
	if err != nil {
		return dataset.Row{}, err
	}
	label, err := dataset.Label(values[s.class.Name()])
	if err != nil {
		return dataset.Row{}, fmt.Errorf("%s: %w", s.class.Name(), err)
	}
	if ok, err := s.class.Valid(label); !ok {
		return dataset.Row{}, fmt.Errorf("%w: %v", dataset.ErrUnknownLabel, err)
	}
	return dataset.Row{Features: features, Label: label}, nil
}

/*
FeatureValues takes a map of feature names to values and returns the values
of the continuous features of the schema in row order, or an error wrapping
dataset.ErrNonNumericFeature if any is missing or not a number.
*/
func (s *Schema) FeatureValues(values map[string]interface{}) ([]float64, error) {
	result := make([]float64, len(s.features))
	for i, f := range s.features {
		v, err := dataset.Float(values[f.Name()])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name(), err)
		}
		result[i] = v
	}
	return result, nil
}

/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
	yaml "gopkg.in/yaml.v2"
)

const (
	continuousType = "continuous"
	discreteType   = "discrete"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it, in the order they are declared,
or an error.
The YML is expected to be an object containing a features property. The value
for this should be an object with a property for each feature with its name
and either the string 'continuous' for continuous features, a list of valid
values for discrete features, or the string 'discrete' for discrete features
taking any value.
*/
func ReadFeatures(md []byte) ([]feature.Feature, error) {
	metadata := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	features := []feature.Feature{}
	seen := make(map[string]bool)
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		if seen[fn] {
			return nil, fmt.Errorf("feature %s declared more than once", fn)
		}
		seen[fn] = true
		switch values := item.Value.(type) {
		case string:
			switch values {
			case continuousType:
				features = append(features, feature.NewContinuousFeature(fn))
			case discreteType:
				features = append(features, feature.NewDiscreteFeature(fn, nil))
			default:
				return nil, fmt.Errorf("invalid type %q for feature %s", values, fn)
			}
		case []interface{}:
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			features = append(features, feature.NewDiscreteFeature(fn, stringVs))
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T for feature %s", item.Value, fn)
		}
	}
	return features, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]feature.Feature, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return features, err
}

/*
ReadSchemaFromFile reads the features in the YML file at the given filepath
and returns a feature.Schema with the one named className as class feature.
*/
func ReadSchemaFromFile(filepath, className string) (*feature.Schema, error) {
	features, err := ReadFeaturesFromFile(filepath)
	if err != nil {
		return nil, err
	}
	return feature.NewSchema(features, className)
}

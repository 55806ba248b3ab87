/*
Package json encodes and decodes dataset rows as JSON objects mapping feature
names to values.
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
)

/*
RowEncodeDecoder is an interface for objects that allow encoding rows into
slices of bytes and decoding them back to rows.
*/
type RowEncodeDecoder interface {

	//Encode receives a dataset.Row and returns a slice of bytes with the
	//row encoded or an error if the encoding could not be performed for
	//some reason.
	Encode(dataset.Row) ([]byte, error)

	//Decode receives a slice of bytes and returns the dataset.Row decoded
	//from it or an error if the decoding could not be performed for some
	//reason.
	Decode([]byte) (dataset.Row, error)
}

type jsonEncodeDecoder struct {
	schema *feature.Schema
}

/*
New takes a feature.Schema and returns a RowEncodeDecoder that encodes rows
as JSON objects with a member for each feature of the schema, class feature
included. Members for other names are ignored when decoding.
*/
func New(schema *feature.Schema) RowEncodeDecoder {
	return &jsonEncodeDecoder{schema}
}

func (jed *jsonEncodeDecoder) Encode(r dataset.Row) ([]byte, error) {
	names := jed.schema.FeatureNames()
	if len(r.Features) != len(names) {
		return nil, fmt.Errorf("%w: %d features, expected %d", dataset.ErrInconsistentFeatureCount, len(r.Features), len(names))
	}
	doc := make(map[string]interface{}, len(names)+1)
	for i, name := range names {
		doc[name] = r.Features[i]
	}
	doc[jed.schema.Class().Name()] = r.Label
	return json.Marshal(doc)
}

func (jed *jsonEncodeDecoder) Decode(data []byte) (dataset.Row, error) {
	var doc map[string]interface{}
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	if err := d.Decode(&doc); err != nil {
		return dataset.Row{}, fmt.Errorf("decoding %q: %w", data, err)
	}
	return jed.schema.Row(doc)
}

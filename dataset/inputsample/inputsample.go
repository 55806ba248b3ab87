/*
Package inputsample reads the feature values of a sample interactively from an
io.Reader, one value per line.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
)

/*
FeatureValueRequester represents a way to ask for feature values and reject
the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(*feature.ContinuousFeature) error
	RejectValueFor(*feature.ContinuousFeature, string) error
}

/*
Reader reads samples from an io.Reader, requesting every feature value with a
FeatureValueRequester before reading it.
*/
type Reader struct {
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	schema                *feature.Schema
}

/*
New takes an io.Reader, a feature.Schema and a FeatureValueRequester and
returns a Reader for the continuous features of the schema.
*/
func New(r io.Reader, schema *feature.Schema, featureValueRequester FeatureValueRequester) *Reader {
	return &Reader{bufio.NewScanner(r), featureValueRequester, schema}
}

/*
ReadFeatures returns the feature values of the next sample in schema order.

For each continuous feature of the schema the value is requested, then lines
are read until one holds a number (see dataset.Float). Lines that do not are
rejected with the FeatureValueRequester's RejectValueFor method. An error is
returned if the reader is exhausted before all values are read.
*/
func (rr *Reader) ReadFeatures() ([]float64, error) {
	features := rr.schema.Features()
	values := make([]float64, 0, len(features))
	for _, f := range features {
		v, err := rr.readContinuousFeature(f)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (rr *Reader) readContinuousFeature(f *feature.ContinuousFeature) (float64, error) {
	err := rr.featureValueRequester.RequestValueFor(f)
	if err != nil {
		return 0, err
	}
	for rr.scanner.Scan() {
		line := rr.scanner.Text()
		value, err := dataset.Float(line)
		if err == nil {
			return value, nil
		}
		err = rr.featureValueRequester.RejectValueFor(f, line)
		if err != nil {
			return 0, err
		}
	}
	if err = rr.scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("EOF when requesting value for %s", f.Name())
}

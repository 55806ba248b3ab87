/*
Package csv reads and writes datasets as CSV streams whose header names the
features of a feature.Schema.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
)

/*
Writer writes rows as CSV records with the feature values followed by the
label, after a header with the names of the schema.
*/
type Writer struct {
	count int
	w     *csv.Writer
}

/*
ReadSet takes an io.Reader for a CSV stream and a feature.Schema and returns
the dataset of the rows parsed from the reader or an error.

The header or first row of the CSV content is expected to include the names
of all the features in the schema, class feature included, in any order.
Columns with other names are ignored. Every other row must have a number for
each continuous feature and a valid value for the class feature.
*/
func ReadSet(reader io.Reader, schema *feature.Schema) (dataset.Dataset, error) {
	var ds dataset.Dataset
	err := ReadSetBySample(reader, schema, func(_ int, r dataset.Row) (bool, error) {
		ds = append(ds, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

/*
ReadSetBySample takes an io.Reader for a CSV stream, a feature.Schema and a
lambda function on an integer and a dataset.Row that returns a boolean value.
It parses the rows from the reader and for each it calls the lambda function
with the row and its index as parameters. If the lambda function returns true,
it will continue processing the next row, otherwise it will stop. An error is
returned if something goes wrong when reading the stream or parsing a row.
*/
func ReadSetBySample(reader io.Reader, schema *feature.Schema, lambda func(int, dataset.Row) (bool, error)) error {
	return readRecords(reader, schema.Names(), len(schema.Names()), func(i int, values map[string]interface{}) (bool, error) {
		r, err := schema.Row(values)
		if err != nil {
			return false, err
		}
		return lambda(i, r)
	})
}

/*
ReadSetFromFilePath takes a filepath string and a feature.Schema, opens the
file to which the filepath points to (os.Stdin if the filepath is "") and uses
ReadSet to return the dataset read from it, or an error.
*/
func ReadSetFromFilePath(filepath string, schema *feature.Schema) (dataset.Dataset, error) {
	f, err := open(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := ReadSet(f, schema)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return ds, err
}

/*
ReadFeatureRows takes an io.Reader for a CSV stream and a feature.Schema and
returns the feature values of every row in schema order. The class feature
column is not required and ignored if present, so the stream can hold samples
whose label is to be predicted.
*/
func ReadFeatureRows(reader io.Reader, schema *feature.Schema) ([][]float64, error) {
	var rows [][]float64
	err := readRecords(reader, schema.Names(), len(schema.FeatureNames()), func(_ int, values map[string]interface{}) (bool, error) {
		fvs, err := schema.FeatureValues(values)
		if err != nil {
			return false, err
		}
		rows = append(rows, fvs)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadFeatureRowsFromFilePath opens the file at the given filepath (os.Stdin
// if it is "") and reads its feature rows with ReadFeatureRows.
func ReadFeatureRowsFromFilePath(filepath string, schema *feature.Schema) ([][]float64, error) {
	f, err := open(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ReadFeatureRows(f, schema)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return rows, err
}

// readRecords reads the CSV header, requiring the first required names to
// be present, and calls lambda with a map of name to value for each record.
func readRecords(reader io.Reader, names []string, required int, lambda func(int, map[string]interface{}) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	columns := make(map[string]int)
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range names[:required] {
		if _, ok := columns[name]; !ok {
			return fmt.Errorf("parsing header: missing column for feature %s", name)
		}
	}
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		values := make(map[string]interface{}, len(names))
		for _, name := range names {
			if i, ok := columns[name]; ok {
				values[name] = record[i]
			}
		}
		ok, err := lambda(l-2, values)
		if err != nil {
			return fmt.Errorf("parsing line %d: %w", l, err)
		}
		if !ok {
			break
		}
	}
	return nil
}

func open(filepath string) (*os.File, error) {
	if filepath == "" {
		return os.Stdin, nil
	}
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening CSV file: %v", err)
	}
	return f, nil
}

/*
NewWriter takes an io.Writer and a slice of column names and returns a Writer
that will write rows on the io.Writer after writing the names as header.
*/
func NewWriter(writer io.Writer, names []string) (*Writer, error) {
	w := csv.NewWriter(writer)
	err := w.Write(names)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &Writer{w: w}, nil
}

/*
WriteSet takes an io.Writer, a dataset and a feature.Schema and dumps the
dataset in CSV format with the names of the schema as header.
*/
func WriteSet(writer io.Writer, ds dataset.Dataset, schema *feature.Schema) error {
	cw, err := NewWriter(writer, schema.Names())
	if err != nil {
		return err
	}
	_, err = cw.Write(ds)
	if err != nil {
		return err
	}
	return cw.Flush()
}

// Count returns the total number of rows written.
func (cw *Writer) Count() int {
	return cw.count
}

// Write writes the given rows and returns the number of rows written and
// the error that stopped it, if any.
func (cw *Writer) Write(rows dataset.Dataset) (int, error) {
	for n, r := range rows {
		if err := cw.WriteRow(r); err != nil {
			return n, err
		}
	}
	return len(rows), nil
}

// WriteRow writes a single row.
func (cw *Writer) WriteRow(r dataset.Row) error {
	record := make([]string, 0, len(r.Features)+1)
	for _, v := range r.Features {
		record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
	}
	record = append(record, r.Label)
	err := cw.w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV row for sample %d: %v", cw.count+1, err)
	}
	cw.count++
	return nil
}

// Flush ensures every written row reaches the underlying io.Writer.
func (cw *Writer) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

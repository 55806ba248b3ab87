package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

/*
RowFromValues takes a slice of loosely typed values, as obtained from a CSV
record, a database row or a decoded document, and returns a Row with all but
the last value as features and the last one as label.

Feature values must be numbers or strings holding numbers; otherwise an error
wrapping ErrNonNumericFeature is returned. A nil label results in an error
wrapping ErrUnknownLabel.
*/
func RowFromValues(values []interface{}) (Row, error) {
	if len(values) < 2 {
		return Row{}, ErrEmptyRow
	}
	features, err := Features(values[:len(values)-1])
	if err != nil {
		return Row{}, err
	}
	label, err := Label(values[len(values)-1])
	if err != nil {
		return Row{}, err
	}
	return Row{Features: features, Label: label}, nil
}

// Features converts every value in the given slice with Float.
func Features(values []interface{}) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyRow
	}
	features := make([]float64, len(values))
	for i, v := range values {
		f, err := Float(v)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		features[i] = f
	}
	return features, nil
}

/*
Float takes a value and returns it as a float64. Numeric types, json.Number,
and strings or byte slices holding a number are accepted. Any other value, and
NaN, results in an error wrapping ErrNonNumericFeature.
*/
func Float(v interface{}) (float64, error) {
	var f float64
	switch v := v.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		return parseFloat(string(v))
	case string:
		return parseFloat(v)
	case []byte:
		return parseFloat(string(v))
	default:
		return 0, fmt.Errorf("%w: %v of type %T", ErrNonNumericFeature, v, v)
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: NaN", ErrNonNumericFeature)
	}
	return f, nil
}

// Label takes a value and returns its string representation to be used as
// label. Nil values are rejected.
func Label(v interface{}) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", fmt.Errorf("%w: no label value", ErrUnknownLabel)
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumericFeature, s)
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: NaN", ErrNonNumericFeature)
	}
	return f, nil
}

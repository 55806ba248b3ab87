package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

/*
MaxSampleInsertionsPerStatement is the maximum number of samples that are
added with a single insert command by the AddSamples method of the adapters
in this package. Adding more results in several insert commands.
*/
const MaxSampleInsertionsPerStatement = 10

/*
Adapter is an interface for objects that allow the storage of samples on an
SQL database table.
*/
type Adapter interface {
	// ColumnName takes the name of a feature and returns the name of the
	// column that holds its values, or an error if the feature cannot be
	// stored.
	ColumnName(featureName string) (string, error)

	// CreateSampleTable ensures the samples table exists with a column for
	// each of the given feature columns and the label column.
	CreateSampleTable(ctx context.Context, featureColumns []string, labelColumn string) error

	// AddSamples takes raw samples as maps of column names to values and
	// inserts them on the samples table, returning the number of samples
	// added.
	AddSamples(ctx context.Context, rawSamples []map[string]interface{}, featureColumns []string, labelColumn string) (int, error)

	// IterateOnSamples calls the given lambda with the index and raw sample
	// of every sample in the table, in insertion order, until the lambda
	// returns false or an error.
	IterateOnSamples(ctx context.Context, featureColumns []string, labelColumn string, lambda func(int, map[string]interface{}) (bool, error)) error

	// CountSamples returns the number of samples in the table.
	CountSamples(ctx context.Context) (int, error)

	// Close releases the database resources held by the adapter.
	Close() error
}

/*
Dialect holds what changes between the SQL databases the adapters in this
package work on.
*/
type Dialect struct {
	// Placeholder returns the bind parameter for the nth (starting at 1)
	// value of a statement.
	Placeholder func(n int) string
	// RealType and TextType are the column types for feature values and labels.
	RealType string
	TextType string
	// IDColumn is the definition of the auto-incremented "id" column.
	IDColumn string
}

type adapter struct {
	db      *sql.DB
	table   string
	dialect Dialect
}

/*
NewAdapter takes a database handle, the name of the samples table and the
dialect of the database and returns an Adapter working on them. It returns an
error if the table name cannot be used.
*/
func NewAdapter(db *sql.DB, table string, dialect Dialect) (Adapter, error) {
	if table == "" {
		return nil, fmt.Errorf("empty samples table name")
	}
	if strings.ContainsAny(table, `"`) {
		return nil, fmt.Errorf(`table name '%s' contains invalid character '"'`, table)
	}
	return &adapter{db: db, table: table, dialect: dialect}, nil
}

func (a *adapter) ColumnName(featureName string) (string, error) {
	if featureName == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as feature name`, featureName)
	}
	if featureName == "" {
		return "", fmt.Errorf("empty feature name")
	}
	if strings.ContainsAny(featureName, `"`) {
		return "", fmt.Errorf(`feature name '%s' contains invalid character '"'`, featureName)
	}
	return featureName, nil
}

func (a *adapter) CreateSampleTable(ctx context.Context, featureColumns []string, labelColumn string) error {
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (`, a.table))
	for _, c := range featureColumns {
		createStmtBuf.WriteString(fmt.Sprintf(`"%s" %s NULL, `, c, a.dialect.RealType))
	}
	createStmtBuf.WriteString(fmt.Sprintf(`"%s" %s NULL, `, labelColumn, a.dialect.TextType))
	createStmtBuf.WriteString(a.dialect.IDColumn)
	createStmtBuf.WriteString(")")
	_, err := a.db.ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return fmt.Errorf("ensuring samples table %s exists: %w", a.table, err)
	}
	return nil
}

func (a *adapter) AddSamples(ctx context.Context, rawSamples []map[string]interface{}, featureColumns []string, labelColumn string) (int, error) {
	columns := append(append(make([]string, 0, len(featureColumns)+1), featureColumns...), labelColumn)
	var added int
	for chunkStart := 0; chunkStart < len(rawSamples); chunkStart += MaxSampleInsertionsPerStatement {
		chunkEnd := chunkStart + MaxSampleInsertionsPerStatement
		if chunkEnd > len(rawSamples) {
			chunkEnd = len(rawSamples)
		}
		chunk := rawSamples[chunkStart:chunkEnd]
		values := make([]interface{}, 0, len(chunk)*len(columns))
		for _, rs := range chunk {
			for _, c := range columns {
				values = append(values, rs[c])
			}
		}
		_, err := a.db.ExecContext(ctx, insertStatement(a.table, columns, len(chunk), a.dialect.Placeholder), values...)
		if err != nil {
			return added, fmt.Errorf("inserting samples %d to %d: %w", chunkStart, chunkEnd-1, err)
		}
		added += len(chunk)
	}
	return added, nil
}

func (a *adapter) IterateOnSamples(ctx context.Context, featureColumns []string, labelColumn string, lambda func(int, map[string]interface{}) (bool, error)) error {
	rows, err := a.db.QueryContext(ctx, selectStatement(a.table, featureColumns, labelColumn))
	if err != nil {
		return fmt.Errorf("querying samples: %w", err)
	}
	defer rows.Close()
	for i := 0; rows.Next(); i++ {
		featureValues := make([]sql.NullFloat64, len(featureColumns))
		var label sql.NullString
		dest := make([]interface{}, 0, len(featureColumns)+1)
		for j := range featureValues {
			dest = append(dest, &featureValues[j])
		}
		dest = append(dest, &label)
		if err = rows.Scan(dest...); err != nil {
			return fmt.Errorf("scanning sample %d: %w", i, err)
		}
		rawSample := make(map[string]interface{}, len(dest))
		for j, c := range featureColumns {
			if featureValues[j].Valid {
				rawSample[c] = featureValues[j].Float64
			}
		}
		if label.Valid {
			rawSample[labelColumn] = label.String
		}
		ok, err := lambda(i, rawSample)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return rows.Err()
}

func (a *adapter) CountSamples(ctx context.Context) (int, error) {
	var count int
	err := a.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, a.table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting samples: %w", err)
	}
	return count, nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}

func insertStatement(table string, columns []string, rows int, placeholder func(int) string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`INSERT INTO "%s" ("`, table))
	buf.WriteString(strings.Join(columns, `", "`))
	buf.WriteString(`") VALUES `)
	n := 1
	for i := 0; i < rows; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for j := range columns {
			if j > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(placeholder(n))
			n++
		}
		buf.WriteString(")")
	}
	return buf.String()
}

func selectStatement(table string, featureColumns []string, labelColumn string) string {
	var buf bytes.Buffer
	buf.WriteString(`SELECT "`)
	for _, c := range featureColumns {
		buf.WriteString(c)
		buf.WriteString(`", "`)
	}
	buf.WriteString(labelColumn)
	buf.WriteString(fmt.Sprintf(`" FROM "%s" ORDER BY "id"`, table))
	return buf.String()
}

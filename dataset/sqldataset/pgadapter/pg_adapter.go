/*
Package pgadapter provides an implementation of the Adapter interface in the
sqldataset package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/sqldataset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

var dialect = sqldataset.Dialect{
	Placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	RealType:    "DOUBLE PRECISION",
	TextType:    "TEXT",
	IDColumn:    `"id" SERIAL PRIMARY KEY`,
}

/*
New takes a PostgreSQL database connection URL and the name of the samples
table and returns an Adapter that works on the database, or an error if it
fails to connect to it.
*/
func New(url, table string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to PostgreSQL database: %w", err)
	}
	a, err := sqldataset.NewAdapter(db, table, dialect)
	if err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

/*
Package sqlite3adapter provides an implementation of the Adapter interface in
the sqldataset package that works over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/sqldataset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

var dialect = sqldataset.Dialect{
	Placeholder: func(int) string { return "?" },
	RealType:    "REAL",
	TextType:    "TEXT",
	IDColumn:    `"id" INTEGER PRIMARY KEY AUTOINCREMENT`,
}

/*
New takes a path to an SQLite3 database file and the name of the samples
table and returns an Adapter that works on the file's database, or an error
if it fails to open it as an sqlite3 database.
*/
func New(path, table string) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// sqlite3 allows a single writer
	db.SetMaxOpenConns(1)
	a, err := sqldataset.NewAdapter(db, table, dialect)
	if err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

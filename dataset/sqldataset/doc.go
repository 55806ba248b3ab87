/*
Package sqldataset reads and writes datasets stored on an SQL database.

Samples are stored on a single table with a REAL column for every continuous
feature of the schema, a TEXT column for the class feature and an "id" column
that keeps the order in which they were added. Driver specifics are provided
by the adapters in the sqlite3adapter and pgadapter subpackages.
*/
package sqldataset

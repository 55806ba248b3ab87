package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/csv"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/mongodataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/redisdataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/sqldataset"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/sqldataset/pgadapter"
	"github.com/YuZhangIsCoding/ML-SelfLearning/dataset/sqldataset/sqlite3adapter"
	"github.com/YuZhangIsCoding/ML-SelfLearning/feature"
	mgo "gopkg.in/mgo.v2"
	redis "gopkg.in/redis.v5"
)

const defaultCollection = "samples"

type setKind int

const (
	csvSet setKind = iota
	sqlite3Set
	postgreSQLSet
	mongoSet
	redisSet
)

func (k setKind) String() string {
	switch k {
	case sqlite3Set:
		return "SQLite3"
	case postgreSQLSet:
		return "PostgreSQL"
	case mongoSet:
		return "MongoDB"
	case redisSet:
		return "Redis"
	}
	return "CSV"
}

// kindOf tells the backend of a set from its location: a database URL, a
// path to an SQLite3 .db file, or anything else for a CSV file ("" meaning
// STDIN or STDOUT).
func kindOf(location string) setKind {
	switch {
	case strings.HasPrefix(location, "postgresql://"), strings.HasPrefix(location, "postgres://"):
		return postgreSQLSet
	case strings.HasPrefix(location, "mongodb://"):
		return mongoSet
	case strings.HasPrefix(location, "redis://"):
		return redisSet
	case strings.HasSuffix(location, ".db"):
		return sqlite3Set
	}
	return csvSet
}

func describe(location string) string {
	if location == "" {
		return "STDIN/STDOUT"
	}
	return location
}

/*
readSet reads the set at the given location with the given schema. The
collection names the table, collection or list key holding the samples on
database backends and is ignored for CSV files.
*/
func (rcc *rootCmdConfig) readSet(ctx context.Context, location, collection string, schema *feature.Schema) (dataset.Dataset, error) {
	kind := kindOf(location)
	rcc.Logf("Reading %s set from %s...", kind, describe(location))
	var ds dataset.Dataset
	var err error
	switch kind {
	case postgreSQLSet, sqlite3Set:
		var a sqldataset.Adapter
		a, err = rcc.sqlAdapter(kind, location, collection)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		ds, err = sqldataset.Read(ctx, a, schema)
	case mongoSet:
		var session *mgo.Session
		session, err = mgo.Dial(location)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB at %s: %w", location, err)
		}
		defer session.Close()
		var mds *mongodataset.Dataset
		mds, err = mongodataset.Open(session, collection, schema)
		if err != nil {
			return nil, err
		}
		ds, err = mds.Read(ctx)
	case redisSet:
		var rc *redis.Client
		rc, err = redisClient(location)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		var rds *redisdataset.Dataset
		rds, err = redisdataset.New(rc, collection, schema)
		if err != nil {
			return nil, err
		}
		ds, err = rds.Read(ctx)
	default:
		ds, err = csv.ReadSetFromFilePath(location, schema)
	}
	if err != nil {
		return nil, fmt.Errorf("reading set from %s: %w", describe(location), err)
	}
	rcc.Logf("Read %d samples", len(ds))
	return ds, nil
}

/*
writeSet writes the given dataset to the given location with the given schema,
appending to the samples already there on database backends and creating or
truncating CSV files. It returns the number of samples written.
*/
func (rcc *rootCmdConfig) writeSet(ctx context.Context, location, collection string, schema *feature.Schema, ds dataset.Dataset) (int, error) {
	kind := kindOf(location)
	rcc.Logf("Writing %d samples to %s set at %s...", len(ds), kind, describe(location))
	var n int
	var err error
	switch kind {
	case postgreSQLSet, sqlite3Set:
		var a sqldataset.Adapter
		a, err = rcc.sqlAdapter(kind, location, collection)
		if err != nil {
			return 0, err
		}
		defer a.Close()
		n, err = sqldataset.Write(ctx, a, schema, ds)
	case mongoSet:
		var session *mgo.Session
		session, err = mgo.Dial(location)
		if err != nil {
			return 0, fmt.Errorf("connecting to MongoDB at %s: %w", location, err)
		}
		defer session.Close()
		var mds *mongodataset.Dataset
		mds, err = mongodataset.Open(session, collection, schema)
		if err != nil {
			return 0, err
		}
		n, err = mds.Write(ctx, ds)
	case redisSet:
		var rc *redis.Client
		rc, err = redisClient(location)
		if err != nil {
			return 0, err
		}
		defer rc.Close()
		var rds *redisdataset.Dataset
		rds, err = redisdataset.New(rc, collection, schema)
		if err != nil {
			return 0, err
		}
		n, err = rds.Write(ctx, ds)
	default:
		n, err = writeCSVSet(location, schema, ds)
	}
	if err != nil {
		return n, fmt.Errorf("writing set to %s: %w", describe(location), err)
	}
	return n, nil
}

func (rcc *rootCmdConfig) sqlAdapter(kind setKind, location, collection string) (sqldataset.Adapter, error) {
	rcc.Logf("Creating %s adapter for %s on table %s...", kind, location, collection)
	if kind == postgreSQLSet {
		return pgadapter.New(location, collection)
	}
	return sqlite3adapter.New(location, collection)
}

func redisClient(location string) (*redis.Client, error) {
	opts, err := redis.ParseURL(location)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL %s: %w", location, err)
	}
	return redis.NewClient(opts), nil
}

func writeCSVSet(location string, schema *feature.Schema, ds dataset.Dataset) (int, error) {
	f := os.Stdout
	if location != "" {
		var err error
		f, err = os.Create(location)
		if err != nil {
			return 0, err
		}
		defer f.Close()
	}
	if err := csv.WriteSet(f, ds, schema); err != nil {
		return 0, err
	}
	return len(ds), nil
}

package postgresrepo

import "errors"

// ErrNilDatabaseConnection is returned when a constructor receives a nil database handle.
var ErrNilDatabaseConnection = errors.New("database connection must not be nil")

// ErrEmptyTableName is returned by WithTableName for an empty name.
var ErrEmptyTableName = errors.New("table name must not be empty")

// ErrUnknownEntity is returned for entity types or tables without a mapping.
var ErrUnknownEntity = errors.New("entity type has no table mapping")

// ErrUnknownRelation is returned when an include path or a relation filter leaves the mapped relation graph.
var ErrUnknownRelation = errors.New("relation path contains a relation without a mapping")

// ErrUntranslatableCondition is returned for predicate leaves without an SQL form, e.g. Where leaves.
var ErrUntranslatableCondition = errors.New("predicate condition cannot be translated to SQL")

var ErrBuildingQueryFailed = errors.New("building the query failed")

var ErrQueryingFailed = errors.New("querying entities failed")

var ErrScanningDBRowFailed = errors.New("scanning the database row failed")

var ErrDecodingRowFailed = errors.New("decoding the entity document failed")

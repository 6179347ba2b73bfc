package adapters

import "context"

// DocumentReader runs document queries: SELECTs returning one jsonb entity document per row.
type DocumentReader interface {
	QueryDocuments(ctx context.Context, query string) (Documents, error)
}

// Documents iterates over the rows of a document query.
type Documents interface {
	Next() bool
	// Document returns the JSON of the current row. The slice is owned by the caller.
	Document() ([]byte, error)
	Err() error
	Close() error
}

package adapters

import (
	"context"
	"database/sql"
)

// SQLAdapter reads documents through a database/sql handle.
type SQLAdapter struct {
	db *sql.DB
}

func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

func (s *SQLAdapter) QueryDocuments(ctx context.Context, query string) (Documents, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &sqlDocuments{rows: rows}, nil
}

package adapters

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLXAdapter reads documents through a sqlx handle.
type SQLXAdapter struct {
	db *sqlx.DB
}

func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{db: db}
}

func (s *SQLXAdapter) QueryDocuments(ctx context.Context, query string) (Documents, error) {
	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &sqlDocuments{rows: rows}, nil
}

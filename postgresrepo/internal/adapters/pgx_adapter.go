package adapters

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGXAdapter reads documents through a pgxpool.Pool.
type PGXAdapter struct {
	primary *pgxpool.Pool
	replica *pgxpool.Pool
}

// NewPGXAdapter creates a PGXAdapter reading from pool.
func NewPGXAdapter(pool *pgxpool.Pool) *PGXAdapter {
	return &PGXAdapter{primary: pool}
}

// NewPGXAdapterWithReplica creates a PGXAdapter that sends every read to replica.
// The primary pool is kept for the lifetime of the store but never queried.
func NewPGXAdapterWithReplica(primary *pgxpool.Pool, replica *pgxpool.Pool) *PGXAdapter {
	return &PGXAdapter{primary: primary, replica: replica}
}

func (p *PGXAdapter) readPool() *pgxpool.Pool {
	if p.replica != nil {
		return p.replica
	}

	return p.primary
}

func (p *PGXAdapter) QueryDocuments(ctx context.Context, query string) (Documents, error) {
	rows, err := p.readPool().Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return &pgxDocuments{rows: rows}, nil
}

type pgxDocuments struct {
	rows pgx.Rows
}

func (d *pgxDocuments) Next() bool {
	return d.rows.Next()
}

// Document scans the jsonb column as raw bytes, pgx copies them out of its read buffer.
func (d *pgxDocuments) Document() ([]byte, error) {
	var document []byte
	if err := d.rows.Scan(&document); err != nil {
		return nil, err
	}

	return document, nil
}

func (d *pgxDocuments) Err() error {
	return d.rows.Err()
}

// Close releases the connection. pgx has no close error of its own, failures surface through Err.
func (d *pgxDocuments) Close() error {
	d.rows.Close()
	return d.rows.Err()
}

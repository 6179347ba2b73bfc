package adapters

// sqlRows is satisfied by *sql.Rows and *sqlx.Rows.
type sqlRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// sqlDocuments serves the sql.DB and the sqlx.DB adapter.
type sqlDocuments struct {
	rows sqlRows
}

func (d *sqlDocuments) Next() bool {
	return d.rows.Next()
}

// Document scans into a fresh slice, database/sql copies driver memory for *[]byte destinations.
func (d *sqlDocuments) Document() ([]byte, error) {
	var document []byte
	if err := d.rows.Scan(&document); err != nil {
		return nil, err
	}

	return document, nil
}

func (d *sqlDocuments) Err() error {
	return d.rows.Err()
}

func (d *sqlDocuments) Close() error {
	return d.rows.Close()
}

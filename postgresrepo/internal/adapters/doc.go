// Package adapters reads entity documents through pgxpool.Pool, sql.DB or sqlx.DB.
//
// The repository renders one SELECT per call whose only column is a jsonb document,
// so the adapters expose document iteration instead of general row scanning.
package adapters

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore keeps every document as one jsonb row of the documents table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres opens and pings a lib/pq connection.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = $1`, key).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select document: %w", err)
	}
	return body, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, body []byte) error {
	const upsertSQL = `
INSERT INTO documents (key, body, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE
SET body = EXCLUDED.body, updated_at = NOW()
`
	if _, err := s.db.ExecContext(ctx, upsertSQL, key, body); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

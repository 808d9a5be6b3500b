// Package db provides PostgreSQL persistence for harvested quotations.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgxpool.Pool the sink uses. Tests substitute a
// pgxmock pool.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// DB wraps a PostgreSQL connection pool.
type DB struct {
	q Querier
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{q: pool}, nil
}

// New wraps an existing Querier. Used by tests.
func New(q Querier) *DB {
	return &DB{q: q}
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.q != nil {
		db.q.Close()
	}
}

// Ping verifies the store is still reachable. The loader uses it to decide
// whether a persistence failure is record-local or run-fatal.
func (db *DB) Ping(ctx context.Context) error {
	return db.q.Ping(ctx)
}

// EnsureSchema creates the quotations and ingest_runs tables if they do not
// exist. The unique index on the case-folded text keeps uniqueness
// whitespace- and case-insensitive across runs; adapters collapse
// whitespace before text reaches the sink.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quotations (
			id SERIAL PRIMARY KEY,
			text_original TEXT NOT NULL,
			language_original VARCHAR(10) NOT NULL,
			text_translated TEXT,
			language_translated VARCHAR(10),
			author VARCHAR(255),
			source_url VARCHAR(500),
			is_validated BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(text_original, language_original)
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS quotations_normalized_uniq
			ON quotations (lower(text_original), language_original)`,
		`CREATE TABLE IF NOT EXISTS ingest_runs (
			id UUID PRIMARY KEY,
			target_count INTEGER NOT NULL,
			fetched INTEGER NOT NULL,
			inserted INTEGER NOT NULL,
			duplicates INTEGER NOT NULL,
			rejected INTEGER NOT NULL,
			translation_failures INTEGER NOT NULL,
			save_errors INTEGER NOT NULL,
			started_at TIMESTAMP NOT NULL,
			finished_at TIMESTAMP NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

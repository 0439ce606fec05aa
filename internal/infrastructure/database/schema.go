package database

import (
	"context"
	"fmt"
)

// schema is applied idempotently at startup. Book rows restrict deletion of
// the author/publisher they reference; the API surfaces that as a conflict.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS authors (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		bio        TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS publishers (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		address    TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id           BIGSERIAL PRIMARY KEY,
		title        VARCHAR(255) NOT NULL,
		description  TEXT,
		author_id    BIGINT NOT NULL REFERENCES authors(id) ON DELETE RESTRICT,
		publisher_id BIGINT NOT NULL REFERENCES publishers(id) ON DELETE RESTRICT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_books_publisher_id ON books(publisher_id)`,
}

// EnsureSchema creates the tables the service needs if they do not exist.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
)

// schema is applied on startup. Statements are idempotent so restarts
// against an initialized database are safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id bigserial PRIMARY KEY,
		name varchar(64) NOT NULL UNIQUE,
		password_hash text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS advertisements (
		id bigserial PRIMARY KEY,
		title varchar(50) NOT NULL,
		description varchar(300) NOT NULL,
		user_id bigint REFERENCES users(id) ON DELETE SET NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_advertisements_title ON advertisements (title)`,
	`CREATE TABLE IF NOT EXISTS tokens (
		id uuid PRIMARY KEY,
		user_id bigint NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
}

// InitSchema creates the tables if they do not exist.
func (r *Repository) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

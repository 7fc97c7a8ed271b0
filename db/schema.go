// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are TEXT in the canonical "YYYY-MM-DD HH:MM:SS" IST form so the
// same schema works on SQLite and PostgreSQL and string order is time order.
const schema = `
-- Teams
CREATE TABLE IF NOT EXISTS team (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL
);

-- Results (no published flag: visibility is derived from reveal_at on read)
CREATE TABLE IF NOT EXISTS result (
    id TEXT PRIMARY KEY,
    team_id TEXT NOT NULL REFERENCES team(id),
    raw_value TEXT NOT NULL,
    reveal_at TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_result_reveal_at ON result(reveal_at);
CREATE INDEX IF NOT EXISTS idx_result_team_id ON result(team_id);
`

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Supported database types.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUnknownTeam        = errors.New("unknown team reference")
	ErrDuplicateTeam      = errors.New("team name already exists")
	ErrUnsupportedDialect = errors.New("unsupported database type")
)

// Open connects to the database named by dialect and url and verifies the
// connection.
func Open(ctx context.Context, dialect, url string) (*sql.DB, error) {
	var driver string
	switch dialect {
	case DialectSQLite:
		driver = "sqlite"
	case DialectPostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	if dialect == DialectSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return conn, nil
}

// Store persists teams and results. It hands back raw records; deciding
// what readers may see is the disclosure package's job.
type Store struct {
	db      *sql.DB
	dialect string
}

func NewStore(db *sql.DB, dialect string) *Store {
	return &Store{db: db, dialect: dialect}
}

// DB exposes the underlying pool, mainly for tests and health checks.
func (s *Store) DB() *sql.DB {
	return s.db
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// inTx runs fn in a transaction, committing only if fn succeeds.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY
// constraint failure from either driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT:
			return true
		}
	}
	return false
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores teams and results on SQLite or PostgreSQL.

# Opening

	conn, err := db.Open(ctx, db.DialectSQLite, "results.db")
	if err != nil {
		log.Fatal(err)
	}
	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}
	store := db.NewStore(conn, db.DialectSQLite)

CreateSchema is safe to call multiple times - uses IF NOT EXISTS for all
tables and indexes.

# Tables

  - team: unique team names
  - result: raw value and reveal time per result

	team 1──* result

Timestamps are TEXT in the canonical IST form "YYYY-MM-DD HH:MM:SS", so the
day query is a plain string range. There is no published column: the store
returns raw records and package disclosure decides what readers see.

# Placeholders

Queries are written with ? placeholders and rewritten to $1, $2, ... for
PostgreSQL.

# Errors

  - ErrNotFound: no row with that id
  - ErrUnknownTeam: a result names a team that does not exist
  - ErrDuplicateTeam: team names are unique

A reveal_at value that does not parse surfaces as civil.ErrMalformedTimestamp
in the returned error chain.
*/
package db

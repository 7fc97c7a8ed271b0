// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the result board API server.

The result board lets operators enter competition results ahead of time with
a reveal time. Readers see "-1" for a result until its reveal time has passed
in Indian Standard Time, then the value itself. Nothing is published by hand;
visibility is recomputed on every read.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=results.db ADMIN_ACCESS_KEY=... ADMIN_PASSWORD=... TOKEN_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first, and RESULTS_CONFIG may
name a YAML file. See package cliparse for every setting.

# Architecture

  - civil: IST civil datetimes, canonical format, clock source
  - disclosure: pending/published projection of stored results
  - handlers: HTTP request handlers (teams, results, login)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, bearer-token guard, metrics, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response types and validation
  - auth: Credential check and signed bearer tokens
  - db: Schema and store for SQLite or PostgreSQL
  - cliparse: Configuration loading

See package documentation for each component.
*/
package main

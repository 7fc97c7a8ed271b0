// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the result board API.

# Handler Types

  - AuthHandler: admin login
  - TeamHandler: team listing and management
  - ResultsHandler: reader views and result management

Handlers are created via constructor functions that accept the store, a clock
and the metrics manager:

	resultsHandler := handlers.NewResultsHandler(store, civil.SystemClock{}, m)

Each request reads the clock once and passes that instant to every
projection it makes.

# Reader Views

	GET /api/today            → Today
	GET /api/results?team=... → PublicByTeam

A result shows visible_result "-1" and status "pending" until its reveal time,
then its raw value and status "published". Equality counts as revealed.

# Admin Views

Admin responses carry the raw result next to the reader view, plus a
humanized "reveals" field such as "3 hours from now".

# Errors

  - 400: malformed JSON, validation failure, unparseable result_time
  - 404: unknown id
  - 409: duplicate team name
  - 422: result names a team that does not exist
  - 500: a stored reveal time is corrupt (counted as an integrity fault)
*/
package handlers

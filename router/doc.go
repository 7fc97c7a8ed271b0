// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the result board API.

# Route Registration

NewRouter returns the full handler, CORS included:

	handler := router.NewRouter(store, cfg, civil.SystemClock{}, metrics.NewManager())

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Session:

	POST /admin/login - Exchange access key and password for a bearer token

Readers (public, results masked as "-1" until revealed):

	GET /api/teams            - All teams
	GET /api/today            - Results scheduled for today (IST)
	GET /api/results?team=... - One team's results on any date

Teams (admin, requires Authorization: Bearer):

	POST   /admin/teams      - Create team
	PUT    /admin/teams/{id} - Rename team
	DELETE /admin/teams/{id} - Delete team and its results

Results (admin):

	GET    /admin/results[?team=] - Raw values plus reader view
	GET    /admin/results/{id}
	POST   /admin/results         - Create
	PUT    /admin/results/{id}    - Edit in any state
	DELETE /admin/results/{id}

Every route except /health and /metrics is wrapped with request logging and
per-route Prometheus instrumentation.
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Metrics

WithMetrics records request count and latency labelled by the matched route
pattern:

	mux.HandleFunc("GET /api/today", middleware.WithMetrics(m, handler))

# Admin Guard

RequireAdmin checks "Authorization: Bearer <token>" against the token secret
and the injected clock:

	middleware.RequireAdmin(cfg.TokenSecret, clk, m, handler)

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type and Authorization.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.TeamRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used when logging rejected logins and tokens.
*/
package middleware

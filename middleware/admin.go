// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/resultboard/auth"
	"github.com/danielhkuo/resultboard/civil"
	"github.com/danielhkuo/resultboard/metrics"
)

// RequireAdmin rejects requests without a valid "Authorization: Bearer"
// token signed with secret.
func RequireAdmin(secret string, clk civil.Clock, m *metrics.Manager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			m.AuthFailure()
			ErrorResponse(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}

		if _, err := auth.ValidateToken(strings.TrimSpace(token), secret, clk.Now()); err != nil {
			m.AuthFailure()
			if errors.Is(err, auth.ErrExpiredToken) {
				ErrorResponse(w, http.StatusUnauthorized, "Session expired")
				return
			}
			slog.Warn("rejected bearer token", "error", err, "remote", GetClientIP(r))
			ErrorResponse(w, http.StatusUnauthorized, "Invalid bearer token")
			return
		}

		next(w, r)
	}
}

// WithMetrics records request count and latency under the matched route
// pattern, so path parameters do not explode label cardinality.
func WithMetrics(m *metrics.Manager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(r.Method, route, rec.status, time.Since(start))
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/resultboard/civil"
	"github.com/danielhkuo/resultboard/cliparse"
	"github.com/danielhkuo/resultboard/db"
	"github.com/danielhkuo/resultboard/handlers"
	"github.com/danielhkuo/resultboard/metrics"
	"github.com/danielhkuo/resultboard/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config, clk civil.Clock, m *metrics.Manager) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, clk, m)
	teamHandler := handlers.NewTeamHandler(store, clk, m)
	resultsHandler := handlers.NewResultsHandler(store, clk, m)

	public := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithMetrics(m, middleware.WithLogging(h))
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return public(middleware.RequireAdmin(cfg.TokenSecret, clk, m, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Session
	mux.HandleFunc("POST /admin/login", public(authHandler.Login))

	// Reader endpoints (public, masked until reveal)
	mux.HandleFunc("GET /api/teams", public(teamHandler.List))
	mux.HandleFunc("GET /api/today", public(resultsHandler.Today))
	mux.HandleFunc("GET /api/results", public(resultsHandler.PublicByTeam))

	// Team management (admin)
	mux.HandleFunc("POST /admin/teams", admin(teamHandler.Create))
	mux.HandleFunc("PUT /admin/teams/{id}", admin(teamHandler.Update))
	mux.HandleFunc("DELETE /admin/teams/{id}", admin(teamHandler.Delete))

	// Result management (admin, raw values visible)
	mux.HandleFunc("GET /admin/results", admin(resultsHandler.AdminList))
	mux.HandleFunc("GET /admin/results/{id}", admin(resultsHandler.AdminGet))
	mux.HandleFunc("POST /admin/results", admin(resultsHandler.Create))
	mux.HandleFunc("PUT /admin/results/{id}", admin(resultsHandler.Update))
	mux.HandleFunc("DELETE /admin/results/{id}", admin(resultsHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("resultboard API v1"))
	})

	return middleware.CORS(cfg.CORSOrigin, mux)
}

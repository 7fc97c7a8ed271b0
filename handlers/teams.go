// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/resultboard/civil"
	"github.com/danielhkuo/resultboard/db"
	"github.com/danielhkuo/resultboard/metrics"
	"github.com/danielhkuo/resultboard/middleware"
	"github.com/danielhkuo/resultboard/models"
)

type TeamHandler struct {
	store   *db.Store
	clock   civil.Clock
	metrics *metrics.Manager
}

func NewTeamHandler(store *db.Store, clk civil.Clock, m *metrics.Manager) *TeamHandler {
	return &TeamHandler{store: store, clock: clk, metrics: m}
}

// List handles GET /api/teams
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		writeError(w, h.metrics, "list teams", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, teams)
}

// Create handles POST /admin/teams
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TeamRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name, err := models.NormalizeTeamName(req.Name)
	if err != nil {
		writeError(w, h.metrics, "create team", err)
		return
	}

	now, ok := sampleNow(w, h.clock)
	if !ok {
		return
	}

	team, err := h.store.CreateTeam(r.Context(), name, now)
	if err != nil {
		writeError(w, h.metrics, "create team", err)
		return
	}

	slog.Info("team created", "team_id", team.ID, "name", team.Name)
	middleware.JSONResponse(w, http.StatusCreated, team)
}

// Update handles PUT /admin/teams/{id}
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.TeamRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name, err := models.NormalizeTeamName(req.Name)
	if err != nil {
		writeError(w, h.metrics, "update team", err)
		return
	}

	team, err := h.store.UpdateTeam(r.Context(), id, name)
	if err != nil {
		writeError(w, h.metrics, "update team", err)
		return
	}

	slog.Info("team renamed", "team_id", team.ID, "name", team.Name)
	middleware.JSONResponse(w, http.StatusOK, team)
}

// Delete handles DELETE /admin/teams/{id}. The team's results go with it.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.store.DeleteTeam(r.Context(), id); err != nil {
		writeError(w, h.metrics, "delete team", err)
		return
	}

	slog.Info("team deleted", "team_id", id)
	w.WriteHeader(http.StatusNoContent)
}

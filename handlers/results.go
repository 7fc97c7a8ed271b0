// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/resultboard/civil"
	"github.com/danielhkuo/resultboard/db"
	"github.com/danielhkuo/resultboard/disclosure"
	"github.com/danielhkuo/resultboard/metrics"
	"github.com/danielhkuo/resultboard/middleware"
	"github.com/danielhkuo/resultboard/models"
)

type ResultsHandler struct {
	store   *db.Store
	clock   civil.Clock
	metrics *metrics.Manager
}

func NewResultsHandler(store *db.Store, clk civil.Clock, m *metrics.Manager) *ResultsHandler {
	return &ResultsHandler{store: store, clock: clk, metrics: m}
}

// Today handles GET /api/today
// Returns every result scheduled for the current IST date, masked with "-1"
// until its reveal time has been reached.
func (h *ResultsHandler) Today(w http.ResponseWriter, r *http.Request) {
	now, ok := sampleNow(w, h.clock)
	if !ok {
		return
	}

	records, err := h.store.ResultsOnDay(r.Context(), now)
	if err != nil {
		writeError(w, h.metrics, "today", err)
		return
	}

	projections := disclosure.Today(records, now)
	counts := h.observe(projections)

	middleware.JSONResponse(w, http.StatusOK, models.TodayResponse{
		Date:      now.DateString(),
		Results:   publicResults(projections),
		Pending:   counts.Pending,
		Published: counts.Published,
	})
}

// PublicByTeam handles GET /api/results?team=NAME
// An unknown team yields an empty list.
func (h *ResultsHandler) PublicByTeam(w http.ResponseWriter, r *http.Request) {
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	if team == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "team is required")
		return
	}

	now, ok := sampleNow(w, h.clock)
	if !ok {
		return
	}

	records, err := h.store.ResultsByTeam(r.Context(), team)
	if err != nil {
		writeError(w, h.metrics, "results by team", err)
		return
	}

	projections := disclosure.ByTeam(records, team, now)
	h.observe(projections)
	middleware.JSONResponse(w, http.StatusOK, publicResults(projections))
}

// AdminList handles GET /admin/results, optionally filtered by ?team=NAME
func (h *ResultsHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	now, ok := sampleNow(w, h.clock)
	if !ok {
		return
	}

	var (
		records []models.ResultRecord
		err     error
	)
	if team := strings.TrimSpace(r.URL.Query().Get("team")); team != "" {
		records, err = h.store.ResultsByTeam(r.Context(), team)
	} else {
		records, err = h.store.ListResults(r.Context())
	}
	if err != nil {
		writeError(w, h.metrics, "admin list", err)
		return
	}

	views := make([]models.AdminResult, 0, len(records))
	for _, rec := range records {
		views = append(views, adminResult(rec, now))
	}
	middleware.JSONResponse(w, http.StatusOK, views)
}

// AdminGet handles GET /admin/results/{id}
func (h *ResultsHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	now, ok := sampleNow(w, h.clock)
	if !ok {
		return
	}

	rec, err := h.store.GetResult(r.Context(), id)
	if err != nil {
		writeError(w, h.metrics, "admin get", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, adminResult(rec, now))
}

// Create handles POST /admin/results
func (h *ResultsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	in, err := req.Normalize()
	if err != nil {
		writeError(w, h.metrics, "create result", err)
		return
	}

	now, ok := sampleNow(w, h.clock)
	if !ok {
		return
	}

	rec, err := h.store.CreateResult(r.Context(), in, now)
	if err != nil {
		writeError(w, h.metrics, "create result", err)
		return
	}
	h.metrics.ResultWrite("create")

	slog.Info("result created",
		"result_id", rec.ID,
		"team", rec.TeamName,
		"reveal_at", rec.RevealAt,
	)
	middleware.JSONResponse(w, http.StatusCreated, adminResult(rec, now))
}

// Update handles PUT /admin/results/{id}
// Results can be edited whether pending or published; the new reveal time
// takes effect on the next read.
func (h *ResultsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.ResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	in, err := req.Normalize()
	if err != nil {
		writeError(w, h.metrics, "update result", err)
		return
	}

	now, ok := sampleNow(w, h.clock)
	if !ok {
		return
	}

	rec, err := h.store.UpdateResult(r.Context(), id, in, now)
	if err != nil {
		writeError(w, h.metrics, "update result", err)
		return
	}
	h.metrics.ResultWrite("update")

	slog.Info("result updated",
		"result_id", rec.ID,
		"team", rec.TeamName,
		"reveal_at", rec.RevealAt,
	)
	middleware.JSONResponse(w, http.StatusOK, adminResult(rec, now))
}

// Delete handles DELETE /admin/results/{id}
func (h *ResultsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.store.DeleteResult(r.Context(), id); err != nil {
		writeError(w, h.metrics, "delete result", err)
		return
	}
	h.metrics.ResultWrite("delete")

	slog.Info("result deleted", "result_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ResultsHandler) observe(projections []disclosure.Projection) disclosure.Counts {
	counts := disclosure.Summarize(projections)
	h.metrics.ObserveProjections(counts.Pending, counts.Published)
	return counts
}

// writeBodyError reports a body that failed to decode. ResultValue rejects
// non-numeric literals with a ValidationError, which is worth echoing.
func writeBodyError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
}

func publicResult(p disclosure.Projection) models.PublicResult {
	return models.PublicResult{
		ID:                p.ID,
		Team:              p.Team,
		VisibleResult:     p.DisplayValue,
		ResultTime:        p.RevealAt,
		ResultTimeDisplay: civil.Display(p.RevealAt),
		Status:            string(p.State),
	}
}

func publicResults(projections []disclosure.Projection) []models.PublicResult {
	out := make([]models.PublicResult, 0, len(projections))
	for _, p := range projections {
		out = append(out, publicResult(p))
	}
	return out
}

// adminResult pairs the raw value with what readers currently see.
func adminResult(rec models.ResultRecord, now civil.Civil) models.AdminResult {
	return models.AdminResult{
		PublicResult: publicResult(disclosure.Project(rec, now)),
		Result:       rec.RawValue,
		Reveals:      humanize.RelTime(rec.RevealAt.Time(), now.Time(), "ago", "from now"),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

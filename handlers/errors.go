// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/resultboard/civil"
	"github.com/danielhkuo/resultboard/db"
	"github.com/danielhkuo/resultboard/metrics"
	"github.com/danielhkuo/resultboard/middleware"
	"github.com/danielhkuo/resultboard/models"
)

// writeError maps domain and store errors onto HTTP responses. Anything it
// does not recognise is logged and reported as a 500.
func writeError(w http.ResponseWriter, m *metrics.Manager, op string, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, civil.ErrInvalidTimeInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, "result_time: "+err.Error())
	case errors.Is(err, db.ErrUnknownTeam):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Unknown team")
	case errors.Is(err, db.ErrDuplicateTeam):
		middleware.ErrorResponse(w, http.StatusConflict, "Team name already exists")
	case errors.Is(err, db.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	case errors.Is(err, civil.ErrMalformedTimestamp):
		m.IntegrityFault()
		slog.Error("stored result has a malformed reveal time", "op", op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Stored result is corrupt")
	default:
		slog.Error("request failed", "op", op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// sampleNow reads the clock once for the whole request.
func sampleNow(w http.ResponseWriter, clk civil.Clock) (civil.Civil, bool) {
	now, err := civil.Now(clk)
	if err != nil {
		slog.Error("clock reading out of range", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Clock error")
		return civil.Civil{}, false
	}
	return now, true
}

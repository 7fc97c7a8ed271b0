// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/resultboard/auth"
	"github.com/danielhkuo/resultboard/civil"
	"github.com/danielhkuo/resultboard/cliparse"
	"github.com/danielhkuo/resultboard/metrics"
	"github.com/danielhkuo/resultboard/middleware"
	"github.com/danielhkuo/resultboard/models"
)

type AuthHandler struct {
	cfg     cliparse.Config
	clock   civil.Clock
	metrics *metrics.Manager
}

func NewAuthHandler(cfg cliparse.Config, clk civil.Clock, m *metrics.Manager) *AuthHandler {
	return &AuthHandler{cfg: cfg, clock: clk, metrics: m}
}

// Login handles POST /admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckCredentials(req.AccessKey, req.Password, h.cfg.AdminAccessKey, h.cfg.AdminPassword); err != nil {
		h.metrics.AuthFailure()
		slog.Warn("admin login rejected", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid access key or password")
		return
	}

	token, expires, err := auth.IssueToken(req.AccessKey, h.cfg.TokenSecret, h.clock.Now(), h.cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	expiresAt, err := civil.FromInstant(expires)
	if err != nil {
		slog.Error("token expiry out of range", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	slog.Info("admin logged in", "expires_at", expiresAt)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

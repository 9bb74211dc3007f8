// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/prec-solucoes/dashmetas/auth"
	"github.com/prec-solucoes/dashmetas/cliparse"
	"github.com/prec-solucoes/dashmetas/middleware"
	"github.com/prec-solucoes/dashmetas/models"
)

// LoginHandler gates the ledger mutations behind the single operator
// credential configured in the environment.
type LoginHandler struct {
	cfg cliparse.Config
}

func NewLoginHandler(cfg cliparse.Config) *LoginHandler {
	return &LoginHandler{cfg: cfg}
}

// Login handles POST /login
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	if err := auth.CheckCredentials(req.Username, req.Password, h.cfg.AdminUser, h.cfg.AdminPass, h.cfg.AdminHash); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := auth.IssueToken(req.Username, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "failed to issue session token")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token})
}

// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/prec-solucoes/dashmetas/db"
	"github.com/prec-solucoes/dashmetas/middleware"
	"github.com/prec-solucoes/dashmetas/models"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(dbConn *sql.DB) *HealthHandler {
	return &HealthHandler{db: dbConn}
}

// GetDBHealth handles GET /health/db
// Reports store reachability and which of the expected tables exist, so a
// missing CRM sync shows up here before it shows up as a broken dashboard.
func (h *HealthHandler) GetDBHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		middleware.JSONResponse(w, http.StatusServiceUnavailable, models.DBHealthResponse{
			Reachable: false,
			Message:   db.Categorize(err),
		})
		return
	}

	tables := map[string]bool{}
	for _, name := range []string{"deal_activity", "closed_sale", "manual_closing"} {
		tables[name] = db.TableExists(h.db, name)
	}

	resp := models.DBHealthResponse{Reachable: true, Tables: tables}
	if !tables["deal_activity"] {
		resp.Message = "deal_activity table not found; the dashboard cannot be computed until the CRM sync runs"
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

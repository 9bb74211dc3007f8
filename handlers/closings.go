// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/prec-solucoes/dashmetas/db"
	"github.com/prec-solucoes/dashmetas/middleware"
	"github.com/prec-solucoes/dashmetas/models"
)

// ClosingsHandler maintains the manual closing ledger. A closing is a flat
// bonus-worthy event, distinct in kind from a closed sale; its value is
// recorded but never feeds revenue.
type ClosingsHandler struct {
	db *sql.DB

	Now func() time.Time
}

func NewClosingsHandler(dbConn *sql.DB) *ClosingsHandler {
	return &ClosingsHandler{db: dbConn, Now: time.Now}
}

// List handles GET /closings
func (h *ClosingsHandler) List(w http.ResponseWriter, r *http.Request) {
	closings, err := db.ListManualClosings(h.db)
	if err != nil {
		slog.Error("failed to list closings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, db.Categorize(err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListClosingsResponse{Closings: closings})
}

// Upsert handles POST /closings
// Closings are unique per (number, owner); a resubmission replaces value and
// date and keeps the original id.
func (h *ClosingsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertClosingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Number == "" || req.Owner == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "number and owner are required")
		return
	}

	closedAt, err := resolveDate(req.ClosedAt, h.Now)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "closed_at must be YYYY-MM-DD")
		return
	}

	closing, err := db.UpsertManualClosing(h.db, uuid.NewString(), req.Number, req.Owner, req.Value, closedAt)
	if err != nil {
		slog.Error("failed to upsert closing", "error", err, "number", req.Number, "owner", req.Owner)
		middleware.ErrorResponse(w, http.StatusInternalServerError, db.Categorize(err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UpsertClosingResponse{Closing: closing})
}

// Delete handles DELETE /closings/{id}
func (h *ClosingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	found, err := db.DeleteManualClosing(h.db, id)
	if err != nil {
		slog.Error("failed to delete closing", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, db.Categorize(err))
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "closing not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "closing removed"})
}

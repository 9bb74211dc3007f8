// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prec-solucoes/dashmetas/db"
	"github.com/prec-solucoes/dashmetas/middleware"
	"github.com/prec-solucoes/dashmetas/models"
)

// SalesHandler maintains the closed-sale ledger, the ground truth for
// proposals won and revenue.
type SalesHandler struct {
	db *sql.DB

	Now func() time.Time
}

func NewSalesHandler(dbConn *sql.DB) *SalesHandler {
	return &SalesHandler{db: dbConn, Now: time.Now}
}

// List handles GET /closed-sales
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := db.ListClosedSales(h.db)
	if err != nil {
		slog.Error("failed to list closed sales", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, db.Categorize(err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListClosedSalesResponse{Sales: sales})
}

// Upsert handles POST /closed-sales
// A resubmission for an existing deal_id replaces owner, value and date.
func (h *SalesHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertClosedSaleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.DealID <= 0 || req.Owner == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "deal_id and owner are required")
		return
	}

	closedAt, err := resolveDate(req.ClosedAt, h.Now)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "closed_at must be YYYY-MM-DD")
		return
	}

	sale, err := db.UpsertClosedSale(h.db, req.DealID, req.Owner, req.Value, closedAt)
	if err != nil {
		slog.Error("failed to upsert closed sale", "error", err, "deal_id", req.DealID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, db.Categorize(err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UpsertClosedSaleResponse{Sale: sale})
}

// Delete handles DELETE /closed-sales/{dealID}
func (h *SalesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	dealID, err := strconv.ParseInt(r.PathValue("dealID"), 10, 64)
	if err != nil || dealID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "dealID must be a positive integer")
		return
	}

	found, err := db.DeleteClosedSale(h.db, dealID)
	if err != nil {
		slog.Error("failed to delete closed sale", "error", err, "deal_id", dealID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, db.Categorize(err))
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "closed sale not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "closed sale removed"})
}

// resolveDate parses a YYYY-MM-DD body field, defaulting to today. The date
// is kept as a plain calendar date to avoid timezone drift on the ledger.
func resolveDate(s string, now func() time.Time) (time.Time, error) {
	if s == "" {
		y, m, d := now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}

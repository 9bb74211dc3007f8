// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/prec-solucoes/dashmetas/campaign"
	"github.com/prec-solucoes/dashmetas/db"
	"github.com/prec-solucoes/dashmetas/leaderboard"
	"github.com/prec-solucoes/dashmetas/middleware"
)

type DashboardHandler struct {
	db   *sql.DB
	camp campaign.Config

	// Now is the evaluation clock; tests pin it for deterministic windows.
	Now func() time.Time
}

func NewDashboardHandler(dbConn *sql.DB, camp campaign.Config) *DashboardHandler {
	return &DashboardHandler{db: dbConn, camp: camp, Now: time.Now}
}

// GetDashboard handles GET /dashboard
// Fetches a snapshot of the three feeds for the campaign window and returns
// the full ranked report. Either the whole report is produced or a single
// categorized error comes back - never a truncated team list.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	now := h.Now()
	start, end := h.camp.WindowFor(now)

	deals, err := db.FetchDealRecords(h.db, start, end)
	if err != nil {
		slog.Error("failed to fetch deal records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, db.Categorize(err))
		return
	}

	sales, err := db.FetchClosedSales(h.db, start, end)
	if err != nil {
		slog.Error("failed to fetch closed sales", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, db.Categorize(err))
		return
	}

	closings, err := db.FetchManualClosings(h.db, start, end)
	if err != nil {
		slog.Error("failed to fetch closings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, db.Categorize(err))
		return
	}

	report := leaderboard.Compute(h.camp, now, deals, sales, closings)

	var totalRevenue float64
	for _, t := range report.Teams {
		totalRevenue += t.Revenue
	}
	slog.Info("report computed",
		"teams", len(report.Teams),
		"deal_rows", len(deals),
		"total_revenue", humanize.Commaf(totalRevenue),
	)

	middleware.JSONResponse(w, http.StatusOK, report)
}

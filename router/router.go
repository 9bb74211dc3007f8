// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prec-solucoes/dashmetas/campaign"
	"github.com/prec-solucoes/dashmetas/cliparse"
	"github.com/prec-solucoes/dashmetas/handlers"
	"github.com/prec-solucoes/dashmetas/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, camp campaign.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(db, camp)
	salesHandler := handlers.NewSalesHandler(db)
	closingsHandler := handlers.NewClosingsHandler(db)
	loginHandler := handlers.NewLoginHandler(cfg)
	healthHandler := handlers.NewHealthHandler(db)

	// Health checks
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /health/db", middleware.WithLogging(healthHandler.GetDBHealth))

	// Operator session
	mux.HandleFunc("POST /login", middleware.WithLogging(loginHandler.Login))

	// Leaderboard (public, the TV in the sales room polls this)
	mux.HandleFunc("GET /dashboard", middleware.WithLogging(dashboardHandler.GetDashboard))

	// Closed-sale ledger (reads public, mutations gated)
	mux.HandleFunc("GET /closed-sales", middleware.WithLogging(salesHandler.List))
	mux.HandleFunc("POST /closed-sales", middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, salesHandler.Upsert)))
	mux.HandleFunc("DELETE /closed-sales/{dealID}", middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, salesHandler.Delete)))

	// Manual closing ledger
	mux.HandleFunc("GET /closings", middleware.WithLogging(closingsHandler.List))
	mux.HandleFunc("POST /closings", middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, closingsHandler.Upsert)))
	mux.HandleFunc("DELETE /closings/{id}", middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, closingsHandler.Delete)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dashmetas API v1"))
	})

	return mux
}

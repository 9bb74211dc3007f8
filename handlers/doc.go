// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the dashmetas API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - DashboardHandler: the ranked leaderboard report
  - SalesHandler: the closed-sale ledger (list, upsert, delete)
  - ClosingsHandler: the manual closing ledger (list, upsert, delete)
  - LoginHandler: operator session tokens
  - HealthHandler: store reachability and table presence

Handlers are created via constructor functions:

	dashboardHandler := handlers.NewDashboardHandler(db, camp)

DashboardHandler, SalesHandler and ClosingsHandler expose a Now func field so
tests can pin the clock; it defaults to time.Now.

# Dashboard Flow

	GET /dashboard → fetch window snapshot of the three feeds
	              → leaderboard.Compute
	              → ranked report, or one categorized error

The deal feed is required: if its table is missing the request fails with a
descriptive message. The two ledgers degrade to empty feeds when their tables
do not exist yet.

# Ledger Flow

	POST /login                     → Login (returns token)
	POST /closed-sales              → Upsert (Bearer token required)
	DELETE /closed-sales/{dealID}   → Delete
	POST /closings                  → Upsert (unique per number+owner)
	DELETE /closings/{id}           → Delete

Upserts replace the previous row for the same key; deletes of absent rows
return 404.
*/
package handlers

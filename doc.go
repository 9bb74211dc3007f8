// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the dashmetas API server.

dashmetas serves the end-of-year sales campaign leaderboard: three fixed teams
race on presented proposals, confirmed sales, manual closings and revenue
against a monthly goal, ranked by a weighted point score.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3340 -d "postgres://..." -t postgres

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): store connection string
  - JWT_SECRET (--jwt-secret): secret for operator session tokens
  - ADMIN_USER (--admin-user): operator username
  - ADMIN_PASS or ADMIN_PASS_HASH: operator password (plain or bcrypt)

Optional settings:

  - PORT (-p): server port (default: 3340)
  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - CAMPAIGN_FILE (-campaign): campaign YAML overriding the built-in roster,
    goals, weights and window

# Architecture

The server uses a handler-based architecture with dependency injection:

  - campaign: campaign configuration (roster, goals, weights, window)
  - leaderboard: the pure scoring and ranking engine
  - db: schema creation and store access for the three input feeds
  - handlers: HTTP request handlers (dashboard, ledgers, login, health)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth gate, CORS, logging, JSON helpers
  - models: request/response and domain types
  - auth: session tokens and credential checks
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

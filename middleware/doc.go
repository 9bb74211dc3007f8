// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: request/completion logs with a uuid request ID
  - RequireAuth: Bearer session-token gate for ledger mutations
  - CORS: cross-origin support for the dashboard frontend
  - JSONResponse / ErrorResponse / ParseJSONBody: JSON plumbing shared by
    every handler
*/
package middleware

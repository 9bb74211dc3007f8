// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire and domain types shared across the server:
raw feed records (DealRecord, ClosedSale, ManualClosing), the computed
leaderboard types (TeamStanding, MemberStats, Report), and the HTTP
request/response envelopes.

Money is float64 throughout, matching the store's NUMERIC columns; NULL and
malformed values are normalized to zero at scan time.
*/
package models

// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides shared test helpers: a per-test sqlite database
with the full schema (the CRM-owned deal_activity table included), seed
helpers for the three feeds, a pinned mid-campaign clock, and HTTP
request/assert helpers.
*/
package testutil

// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns schema creation and store access for the three input feeds.

The server owns two tables (closed_sale, manual_closing) and creates them
idempotently at startup. The deal_activity table belongs to the CRM sync job:
the server only reads it, and reports a schema error when it is absent.

All SQL is kept portable across the two supported drivers (lib/pq and modernc
sqlite): $N binds, ON CONFLICT upserts, half-open date ranges bound as ISO
date strings, and app-generated ids instead of serial columns.

Reads are lenient: NULL or unparseable numeric and date fields scan to zero
values instead of failing the whole report.
*/
package db

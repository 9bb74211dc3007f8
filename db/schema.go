// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the two app-owned ledger tables. Safe to call multiple
// times - uses IF NOT EXISTS.
//
// The deal_activity table is deliberately NOT created here: it belongs to the
// CRM sync job and the server only reads it. If it is absent the dashboard
// reports a schema error instead of silently serving an empty board.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Manually confirmed wins, one row per deal
CREATE TABLE IF NOT EXISTS closed_sale (
    deal_id BIGINT PRIMARY KEY,
    owner TEXT NOT NULL,
    value NUMERIC,
    closed_at DATE NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_closed_sale_closed_at ON closed_sale(closed_at);
CREATE INDEX IF NOT EXISTS idx_closed_sale_owner ON closed_sale(owner);

-- Flat bonus-worthy closing events
CREATE TABLE IF NOT EXISTS manual_closing (
    id TEXT PRIMARY KEY,
    closing_number TEXT NOT NULL,
    owner TEXT NOT NULL,
    value NUMERIC,
    closed_at DATE NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (closing_number, owner)
);

CREATE INDEX IF NOT EXISTS idx_manual_closing_closed_at ON manual_closing(closed_at);
CREATE INDEX IF NOT EXISTS idx_manual_closing_owner ON manual_closing(owner);
`

// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prec-solucoes/dashmetas/models"
)

// dateLayout is the wire format for date binds. Comparing ISO date strings
// works on both supported drivers without casts.
const dateLayout = "2006-01-02"

// FetchDealRecords reads the raw deal-stage rows inside [start, end], ordered
// by occurrence date. This is the required feed: a missing table is an error,
// wrapped around ErrDealFeedMissing so callers can explain it.
//
// Only the window filter is pushed to the store. Roster filtering happens in
// the engine, which keeps the SQL free of interpolated name lists.
func FetchDealRecords(db *sql.DB, start, end time.Time) ([]models.DealRecord, error) {
	rows, err := db.Query(`
		SELECT deal_id, owner, stage, value, occurred_at
		FROM deal_activity
		WHERE deal_id IS NOT NULL
		  AND occurred_at >= $1 AND occurred_at < $2
		ORDER BY occurred_at ASC
	`, start.Format(dateLayout), end.AddDate(0, 0, 1).Format(dateLayout))
	if err != nil {
		if isMissingTable(err) {
			return nil, fmt.Errorf("%w: run the CRM sync before opening the dashboard", ErrDealFeedMissing)
		}
		return nil, err
	}
	defer rows.Close()

	var out []models.DealRecord
	for rows.Next() {
		var (
			rec        models.DealRecord
			value      sql.NullString
			occurredAt sql.NullString
		)
		if err := rows.Scan(&rec.DealID, &rec.Owner, &rec.Stage, &value, &occurredAt); err != nil {
			return nil, err
		}
		rec.Value = parseValue(value)
		rec.OccurredAt = parseDate(occurredAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// FetchClosedSales reads the closed-sale ledger inside [start, end]. The
// table not existing yet is not an error: the feed is simply empty.
func FetchClosedSales(db *sql.DB, start, end time.Time) ([]models.ClosedSale, error) {
	rows, err := db.Query(`
		SELECT deal_id, owner, value, closed_at, created_at
		FROM closed_sale
		WHERE closed_at >= $1 AND closed_at < $2
	`, start.Format(dateLayout), end.AddDate(0, 0, 1).Format(dateLayout))
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var out []models.ClosedSale
	for rows.Next() {
		s, err := scanClosedSale(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// FetchManualClosings reads the closing ledger inside [start, end], degrading
// to empty when the table is absent.
func FetchManualClosings(db *sql.DB, start, end time.Time) ([]models.ManualClosing, error) {
	rows, err := db.Query(`
		SELECT id, closing_number, owner, value, closed_at, created_at
		FROM manual_closing
		WHERE closed_at >= $1 AND closed_at < $2
	`, start.Format(dateLayout), end.AddDate(0, 0, 1).Format(dateLayout))
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var out []models.ManualClosing
	for rows.Next() {
		c, err := scanManualClosing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListClosedSales returns the whole ledger, newest first, for the admin page.
func ListClosedSales(db *sql.DB) ([]models.ClosedSale, error) {
	rows, err := db.Query(`
		SELECT deal_id, owner, value, closed_at, created_at
		FROM closed_sale
		ORDER BY closed_at DESC, created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ClosedSale{}
	for rows.Next() {
		s, err := scanClosedSale(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListManualClosings returns the whole closing ledger, newest first.
func ListManualClosings(db *sql.DB) ([]models.ManualClosing, error) {
	rows, err := db.Query(`
		SELECT id, closing_number, owner, value, closed_at, created_at
		FROM manual_closing
		ORDER BY closed_at DESC, created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ManualClosing{}
	for rows.Next() {
		c, err := scanManualClosing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpsertClosedSale inserts or replaces the row for a deal. A resubmission for
// the same deal_id replaces owner, value and date.
func UpsertClosedSale(db *sql.DB, dealID int64, owner string, value *float64, closedAt time.Time) (models.ClosedSale, error) {
	_, err := db.Exec(`
		INSERT INTO closed_sale (deal_id, owner, value, closed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (deal_id)
		DO UPDATE SET owner = excluded.owner, value = excluded.value, closed_at = excluded.closed_at
	`, dealID, owner, nullFloat(value), closedAt.Format(dateLayout))
	if err != nil {
		return models.ClosedSale{}, err
	}

	row := db.QueryRow(`
		SELECT deal_id, owner, value, closed_at, created_at
		FROM closed_sale WHERE deal_id = $1
	`, dealID)
	return scanClosedSale(row)
}

// DeleteClosedSale removes a ledger row. Returns false when no row existed.
func DeleteClosedSale(db *sql.DB, dealID int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM closed_sale WHERE deal_id = $1`, dealID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// UpsertManualClosing inserts or replaces a closing keyed by (number, owner).
// The id is generated app-side so the schema stays driver-portable; a
// conflicting resubmission keeps the original id.
func UpsertManualClosing(db *sql.DB, id, number, owner string, value *float64, closedAt time.Time) (models.ManualClosing, error) {
	_, err := db.Exec(`
		INSERT INTO manual_closing (id, closing_number, owner, value, closed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (closing_number, owner)
		DO UPDATE SET value = excluded.value, closed_at = excluded.closed_at
	`, id, number, owner, nullFloat(value), closedAt.Format(dateLayout))
	if err != nil {
		return models.ManualClosing{}, err
	}

	row := db.QueryRow(`
		SELECT id, closing_number, owner, value, closed_at, created_at
		FROM manual_closing WHERE closing_number = $1 AND owner = $2
	`, number, owner)
	return scanManualClosing(row)
}

// DeleteManualClosing removes a closing by id. Returns false when absent.
func DeleteManualClosing(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM manual_closing WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// TableExists probes for a table by selecting from it, which works the same
// on postgres and sqlite.
func TableExists(db *sql.DB, name string) bool {
	row := db.QueryRow(`SELECT COUNT(*) FROM ` + name + ` WHERE 1 = 0`)
	var n int
	return row.Scan(&n) == nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClosedSale(row scanner) (models.ClosedSale, error) {
	var (
		s         models.ClosedSale
		value     sql.NullString
		closedAt  sql.NullString
		createdAt sql.NullString
	)
	if err := row.Scan(&s.DealID, &s.Owner, &value, &closedAt, &createdAt); err != nil {
		return models.ClosedSale{}, err
	}
	s.Value = parseValue(value)
	s.ClosedAt = parseDate(closedAt)
	s.CreatedAt = parseDate(createdAt)
	return s, nil
}

func scanManualClosing(row scanner) (models.ManualClosing, error) {
	var (
		c         models.ManualClosing
		value     sql.NullString
		closedAt  sql.NullString
		createdAt sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Number, &c.Owner, &value, &closedAt, &createdAt); err != nil {
		return models.ManualClosing{}, err
	}
	c.Value = parseValue(value)
	c.ClosedAt = parseDate(closedAt)
	c.CreatedAt = parseDate(createdAt)
	return c, nil
}

// parseValue treats NULL and unparseable numerics as zero. One bad row must
// not void the whole report.
func parseValue(v sql.NullString) float64 {
	if !v.Valid {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseDate accepts the formats the two drivers hand back for DATE and
// TIMESTAMP columns. Unparseable dates come out as the zero time.
func parseDate(v sql.NullString) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	s := strings.TrimSpace(v.String)
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
		dateLayout,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

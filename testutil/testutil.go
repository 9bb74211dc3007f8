// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/prec-solucoes/dashmetas/campaign"
	"github.com/prec-solucoes/dashmetas/cliparse"
	"github.com/prec-solucoes/dashmetas/db"
)

// FixedNow is the pinned evaluation clock for tests: mid-campaign, a Sunday.
// Window for this year is Nov 5 .. Dec 20 2025.
var FixedNow = time.Date(2025, time.November, 30, 12, 0, 0, 0, time.UTC)

// SetupTestDB creates a fresh sqlite database with the full schema, the
// external deal_activity table included.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbConn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "dashmetas_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	dbConn.SetMaxOpenConns(1)
	t.Cleanup(func() { dbConn.Close() })

	if err := db.CreateSchema(dbConn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	// The CRM-owned table the server never creates itself
	_, err = dbConn.Exec(`
		CREATE TABLE deal_activity (
			id INTEGER PRIMARY KEY,
			deal_id BIGINT,
			owner TEXT NOT NULL,
			stage TEXT NOT NULL,
			value NUMERIC,
			occurred_at DATE NOT NULL
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create deal_activity: %v", err)
	}

	return dbConn
}

// DropDealTable removes the required feed, for exercising the fatal path.
func DropDealTable(t *testing.T, dbConn *sql.DB) {
	t.Helper()
	if _, err := dbConn.Exec(`DROP TABLE deal_activity`); err != nil {
		t.Fatalf("Failed to drop deal_activity: %v", err)
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3340,
		DatabaseURL:  "test.db",
		DatabaseType: "sqlite",
		JWTSecret:    "test-jwt-secret",
		AdminUser:    "admin",
		AdminPass:    "natal2025",
	}
}

// GetTestCampaign returns the production campaign, which tests rely on for
// the real team ids and rosters.
func GetTestCampaign() campaign.Config {
	return campaign.Default()
}

// InsertDeal adds a raw deal-stage row. occurredAt is YYYY-MM-DD.
func InsertDeal(t *testing.T, dbConn *sql.DB, dealID int64, owner, stage string, value float64, occurredAt string) {
	t.Helper()
	_, err := dbConn.Exec(`
		INSERT INTO deal_activity (deal_id, owner, stage, value, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`, dealID, owner, stage, value, occurredAt)
	if err != nil {
		t.Fatalf("Failed to insert deal record: %v", err)
	}
}

// InsertClosedSale adds a row to the closed-sale ledger. closedAt is YYYY-MM-DD.
func InsertClosedSale(t *testing.T, dbConn *sql.DB, dealID int64, owner string, value float64, closedAt string) {
	t.Helper()
	_, err := dbConn.Exec(`
		INSERT INTO closed_sale (deal_id, owner, value, closed_at)
		VALUES ($1, $2, $3, $4)
	`, dealID, owner, value, closedAt)
	if err != nil {
		t.Fatalf("Failed to insert closed sale: %v", err)
	}
}

// InsertClosing adds a row to the manual closing ledger.
func InsertClosing(t *testing.T, dbConn *sql.DB, id, number, owner string, value float64, closedAt string) {
	t.Helper()
	_, err := dbConn.Exec(`
		INSERT INTO manual_closing (id, closing_number, owner, value, closed_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, number, owner, value, closedAt)
	if err != nil {
		t.Fatalf("Failed to insert closing: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

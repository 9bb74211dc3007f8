// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prec-solucoes/dashmetas/db"
	"github.com/prec-solucoes/dashmetas/testutil"
)

var (
	windowStart = time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)
)

func TestCreateSchemaIdempotent(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)

	// SetupTestDB already ran it once; a second run must be harmless.
	if err := db.CreateSchema(dbConn); err != nil {
		t.Fatalf("CreateSchema not idempotent: %v", err)
	}
}

func TestFetchDealRecordsWindow(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)

	testutil.InsertDeal(t, dbConn, 1, "Caio", "Negociações iniciadas", 1000, "2025-11-10")
	testutil.InsertDeal(t, dbConn, 2, "Caio", "Negociações iniciadas", 1000, "2025-11-04") // before window
	testutil.InsertDeal(t, dbConn, 3, "Caio", "Negociações iniciadas", 1000, "2025-12-21") // after window
	testutil.InsertDeal(t, dbConn, 4, "Caio", "Negociações iniciadas", 1000, "2025-12-20") // last day counts

	records, err := db.FetchDealRecords(dbConn, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("FetchDealRecords failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 in-window records, got %d", len(records))
	}
	// Ordered by occurrence date
	if records[0].DealID != 1 || records[1].DealID != 4 {
		t.Errorf("Unexpected records/order: %+v", records)
	}
}

func TestFetchDealRecordsLenientParsing(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)

	// Malformed value and NULL value must scan to zero, not fail the fetch.
	_, err := dbConn.Exec(`
		INSERT INTO deal_activity (deal_id, owner, stage, value, occurred_at)
		VALUES (1, 'Caio', 'Negociações iniciadas', 'not-a-number', '2025-11-10'),
		       (2, 'Davi', 'Negociações iniciadas', NULL, '2025-11-11'),
		       (NULL, 'Caio', 'Negociações iniciadas', 500, '2025-11-12')
	`)
	if err != nil {
		t.Fatalf("Failed to seed rows: %v", err)
	}

	records, err := db.FetchDealRecords(dbConn, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("FetchDealRecords failed: %v", err)
	}

	// The NULL deal_id row is filtered out by the query.
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	for _, r := range records {
		if r.Value != 0 {
			t.Errorf("Expected zero value for deal %d, got %v", r.DealID, r.Value)
		}
		if r.OccurredAt.IsZero() {
			t.Errorf("Expected parsed date for deal %d", r.DealID)
		}
	}
}

func TestFetchDealRecordsMissingTable(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	testutil.DropDealTable(t, dbConn)

	_, err := db.FetchDealRecords(dbConn, windowStart, windowEnd)
	if !errors.Is(err, db.ErrDealFeedMissing) {
		t.Fatalf("Expected ErrDealFeedMissing, got %v", err)
	}
}

func TestOptionalFeedsDegradeWhenTablesMissing(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	for _, stmt := range []string{`DROP TABLE closed_sale`, `DROP TABLE manual_closing`} {
		if _, err := dbConn.Exec(stmt); err != nil {
			t.Fatalf("Failed to drop table: %v", err)
		}
	}

	sales, err := db.FetchClosedSales(dbConn, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("Expected empty feed, got error: %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("Expected no sales, got %d", len(sales))
	}

	closings, err := db.FetchManualClosings(dbConn, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("Expected empty feed, got error: %v", err)
	}
	if len(closings) != 0 {
		t.Errorf("Expected no closings, got %d", len(closings))
	}
}

func TestUpsertClosedSaleReplaces(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)

	value1 := 100000.0
	if _, err := db.UpsertClosedSale(dbConn, 42, "Caio", &value1, windowStart); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}

	value2 := 250000.0
	sale, err := db.UpsertClosedSale(dbConn, 42, "Kauany", &value2, windowStart.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	if sale.Owner != "Kauany" || sale.Value != 250000 {
		t.Errorf("Upsert did not replace owner/value: %+v", sale)
	}

	sales, err := db.ListClosedSales(dbConn)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(sales) != 1 {
		t.Errorf("Expected a single row for deal 42, got %d", len(sales))
	}
}

func TestUpsertClosedSaleNullValue(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)

	sale, err := db.UpsertClosedSale(dbConn, 7, "Davi", nil, windowStart)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if sale.Value != 0 {
		t.Errorf("Expected NULL value to read back as 0, got %v", sale.Value)
	}
}

func TestDeleteClosedSale(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	testutil.InsertClosedSale(t, dbConn, 9, "Caio", 1000, "2025-11-10")

	found, err := db.DeleteClosedSale(dbConn, 9)
	if err != nil || !found {
		t.Fatalf("Expected delete to find the row, got found=%v err=%v", found, err)
	}

	found, err = db.DeleteClosedSale(dbConn, 9)
	if err != nil {
		t.Fatalf("Delete of absent row errored: %v", err)
	}
	if found {
		t.Error("Expected found=false for an absent row")
	}
}

func TestUpsertManualClosingKeepsID(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)

	value := 5000.0
	first, err := db.UpsertManualClosing(dbConn, "id-a", "NF-001", "Byanka", &value, windowStart)
	if err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}

	value2 := 7500.0
	second, err := db.UpsertManualClosing(dbConn, "id-b", "NF-001", "Byanka", &value2, windowStart.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("Conflicting resubmission must keep the original id: %q vs %q", second.ID, first.ID)
	}
	if second.Value != 7500 {
		t.Errorf("Expected replaced value 7500, got %v", second.Value)
	}

	closings, err := db.ListManualClosings(dbConn)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(closings) != 1 {
		t.Errorf("Expected a single row for (NF-001, Byanka), got %d", len(closings))
	}
}

func TestFetchClosedSalesWindow(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)

	testutil.InsertClosedSale(t, dbConn, 1, "Caio", 1000, "2025-11-10")
	testutil.InsertClosedSale(t, dbConn, 2, "Caio", 1000, "2025-10-01")
	testutil.InsertClosing(t, dbConn, "c1", "NF-1", "Davi", 0, "2025-12-20")
	testutil.InsertClosing(t, dbConn, "c2", "NF-2", "Davi", 0, "2026-01-05")

	sales, err := db.FetchClosedSales(dbConn, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("FetchClosedSales failed: %v", err)
	}
	if len(sales) != 1 || sales[0].DealID != 1 {
		t.Errorf("Expected only the in-window sale, got %+v", sales)
	}

	closings, err := db.FetchManualClosings(dbConn, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("FetchManualClosings failed: %v", err)
	}
	if len(closings) != 1 || closings[0].ID != "c1" {
		t.Errorf("Expected only the in-window closing, got %+v", closings)
	}
}

func TestTableExists(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)

	if !db.TableExists(dbConn, "closed_sale") {
		t.Error("Expected closed_sale to exist")
	}
	if db.TableExists(dbConn, "no_such_table") {
		t.Error("Expected no_such_table to not exist")
	}
}

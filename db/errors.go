// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/lib/pq"
)

// ErrDealFeedMissing means the CRM-owned deal_activity table does not exist.
// This is the one feed the dashboard cannot degrade without.
var ErrDealFeedMissing = errors.New("deal activity table not found")

// isMissingTable recognizes an undefined-table failure on either driver.
func isMissingTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42P01" // undefined_table
	}
	return strings.Contains(err.Error(), "no such table")
}

// Categorize maps a store failure to an operator-readable message. Each
// request stands alone: no retry or backoff state is carried between calls.
func Categorize(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrDealFeedMissing) {
		return err.Error()
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "database host not found"
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return "database is unreachable"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timed out connecting to the database"
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "28000", "28P01": // invalid_authorization_specification, invalid_password
			return "database authentication failed"
		case "42P01":
			return "expected table not found"
		}
	}

	return "database error: " + err.Error()
}

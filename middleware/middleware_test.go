// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prec-solucoes/dashmetas/auth"
	"github.com/prec-solucoes/dashmetas/models"
)

const testSecret = "test-jwt-secret"

func TestWithLoggingSetsRequestID(t *testing.T) {
	var seen string
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if seen == "" {
		t.Error("Expected a request ID in the handler context")
	}
	if got := rr.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("X-Request-ID header %q does not match context value %q", got, seen)
	}
}

func TestRequireAuthMissingHeader(t *testing.T) {
	handler := RequireAuth(testSecret, func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run without a token")
	})

	req := httptest.NewRequest("POST", "/closed-sales", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rr.Code)
	}
}

func TestRequireAuthBadToken(t *testing.T) {
	handler := RequireAuth(testSecret, func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run with a bad token")
	})

	req := httptest.NewRequest("POST", "/closed-sales", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rr.Code)
	}

	var errResp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if errResp.Message == "" {
		t.Error("Expected an error message in the body")
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	token, err := auth.IssueToken("admin", testSecret)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	var operator string
	handler := RequireAuth(testSecret, func(w http.ResponseWriter, r *http.Request) {
		operator = Operator(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest("POST", "/closed-sales", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rr.Code)
	}
	if operator != "admin" {
		t.Errorf("Expected operator admin in context, got %q", operator)
	}
}

func TestErrorResponseShape(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorResponse(rr, http.StatusNotFound, "no such deal")

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	var errResp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if errResp.Error != "Not Found" || errResp.Message != "no such deal" {
		t.Errorf("Unexpected error body: %+v", errResp)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight must not reach the wrapped handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Expected Access-Control-Allow-Methods to be set")
	}
}

func TestCORSPassThrough(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !called {
		t.Error("Expected GET to reach the wrapped handler")
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Expected wildcard origin without an Origin header, got %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
}

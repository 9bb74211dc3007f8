// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prec-solucoes/dashmetas/auth"
	"github.com/prec-solucoes/dashmetas/models"
	"github.com/prec-solucoes/dashmetas/testutil"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "valid credentials",
			body:       models.LoginRequest{Username: "admin", Password: "natal2025"},
			wantStatus: 200,
		},
		{
			name:       "wrong password",
			body:       models.LoginRequest{Username: "admin", Password: "wrong"},
			wantStatus: 401,
		},
		{
			name:       "wrong username",
			body:       models.LoginRequest{Username: "root", Password: "natal2025"},
			wantStatus: 401,
		},
		{
			name:       "missing password",
			body:       models.LoginRequest{Username: "admin"},
			wantStatus: 400,
		},
		{
			name:       "missing username",
			body:       models.LoginRequest{Password: "natal2025"},
			wantStatus: 400,
		},
	}

	h := NewLoginHandler(testutil.GetTestConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/login", tt.body, nil)
			rr := httptest.NewRecorder()
			h.Login(rr, req)

			testutil.AssertStatus(t, rr, tt.wantStatus)
		})
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	cfg := testutil.GetTestConfig()
	h := NewLoginHandler(cfg)

	req := testutil.MakeRequest("POST", "/login", models.LoginRequest{
		Username: "admin", Password: "natal2025",
	}, nil)
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	testutil.AssertStatus(t, rr, 200)

	var resp models.LoginResponse
	testutil.AssertJSON(t, rr, &resp)
	if resp.Token == "" {
		t.Fatal("Expected a session token")
	}

	operator, err := auth.VerifyToken(resp.Token, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("Issued token does not verify: %v", err)
	}
	if operator != "admin" {
		t.Errorf("Expected token subject admin, got %q", operator)
	}
}

func TestLoginInvalidJSON(t *testing.T) {
	h := NewLoginHandler(testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/login", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	testutil.AssertStatus(t, rr, 400)
}

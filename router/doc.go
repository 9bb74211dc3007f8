// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method patterns on
http.ServeMux.

Reads (dashboard, ledger lists, health) are public: the sales-room TV polls
them without credentials. Ledger mutations are gated behind the operator
session token issued by POST /login.
*/
package router

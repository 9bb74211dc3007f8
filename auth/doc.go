// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the operator session: a single configured credential
checked at login (bcrypt hash or constant-time plain compare) and HS256
session tokens with a 24h lifetime.

There are no user accounts. The campaign has exactly one operator credential,
shared by the people allowed to enter closings.
*/
package auth

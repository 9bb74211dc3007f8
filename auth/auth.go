// Copyright (c) 2025 PREC Soluções.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCredentials = errors.New("invalid username or password")
	ErrInvalidToken   = errors.New("invalid session token")
)

// Sessions last a full workday and then some; the board is re-opened daily
// anyway, so there is no refresh flow.
const tokenTTL = 24 * time.Hour

// IssueToken creates an HS256 session token for the operator.
func IssueToken(username, secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// VerifyToken validates a session token and returns the username it was
// issued to.
func VerifyToken(tokenStr, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// CheckCredentials validates the single operator credential. When a bcrypt
// hash is configured it wins over the plaintext password; the plaintext path
// exists for dev setups and compares in constant time.
func CheckCredentials(username, password, wantUser, wantPass, wantHash string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1

	if wantHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(wantHash), []byte(password)); err != nil || !userOK {
			return ErrBadCredentials
		}
		return nil
	}

	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
	if !userOK || !passOK {
		return ErrBadCredentials
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued bearer token.
// UserID duplicates the "sub" claim as a number for clients that read the
// payload directly.
type TokenClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Token is an issued or verified bearer token.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier carried by the token.
	UserID int64 `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-hotel-booking/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoBearerToken is returned by ParseBearerToken when the header carries
// no usable token.
var ErrNoBearerToken = errors.New("no bearer token provided")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for userID.
//
// The token carries the "userId" claim plus the standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Returns an error if issuer or signKey is empty or tokenDuration is not
// positive.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	expiresAt := now.Add(tokenDuration)
	claims := &models.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, UserID: userID, ExpiresAt: expiresAt}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts the owner.
//
// Validation includes the HS256 signature, the issuer, the expiry measured
// against now(), and presence of a numeric subject that matches the
// "userId" claim.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}
	if userID != claims.UserID {
		return models.Token{}, errors.New("subject does not match userId claim")
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The literal token "null" is treated as absent since browser
// clients send it when nothing is stored.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrNoBearerToken
	}
	if parts[1] == "null" {
		return "", ErrNoBearerToken
	}

	return parts[1], nil
}

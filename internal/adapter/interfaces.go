// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the hotel booking REST API.
//
// The primary abstraction is [ServerAdapter]; [NewHTTPServerAdapter] returns
// its resty-based implementation. Error responses are mapped to the sentinel
// values in errors.go so that callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-hotel-booking/models"
)

// ServerAdapter defines communication with the booking API. Implementations
// keep the bearer token obtained by Login and attach it to every
// authenticated request.
type ServerAdapter interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none.
	Token() string

	// Login calls POST /login and stores the returned token.
	Login(ctx context.Context, email, password string) (string, error)

	// CheckSession calls GET /check-session with the stored token.
	CheckSession(ctx context.Context) (bool, error)

	// Logout calls POST /logout and forgets the stored token.
	Logout(ctx context.Context) (string, error)

	// Rooms calls GET /rooms. An empty location lists every room.
	Rooms(ctx context.Context, location string) ([]models.Room, error)

	// Book calls POST /book. UserID in req is ignored; the server takes it
	// from the token.
	Book(ctx context.Context, req models.BookingRequest) (models.BookingResponse, error)

	// Bookings calls GET /bookings.
	Bookings(ctx context.Context) ([]models.BookingDetails, error)
}

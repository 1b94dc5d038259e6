// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-hotel-booking/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CheckSession(ctx context.Context, tokenString string) bool
}

type RoomService interface {
	// ListRooms returns every room, or only those in location (compared
	// case-insensitively). An empty location or "all" disables the filter.
	ListRooms(ctx context.Context, location string) ([]models.Room, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, request models.BookingRequest) (models.Booking, error)
	ListBookings(ctx context.Context, userID int64) ([]models.BookingDetails, error)
}

// SeedService fills an empty database on startup.
type SeedService interface {
	Seed(ctx context.Context) error
}

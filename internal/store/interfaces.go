// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-hotel-booking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores user accounts.
type UserRepository interface {
	// CreateUser inserts user (whose Password must already be hashed) and
	// returns it with UserID set. Returns [ErrEmailAlreadyExists] on a
	// duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with exactly this email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// RoomRepository stores the room catalog.
type RoomRepository interface {
	// ListRooms returns rooms matching filter ordered by id.
	ListRooms(ctx context.Context, filter models.RoomFilter) ([]models.Room, error)

	// GetRoom returns a single room or [ErrRoomNotFound].
	GetRoom(ctx context.Context, roomID int64) (models.Room, error)

	// CountRooms returns the number of rooms in the catalog.
	CountRooms(ctx context.Context) (int64, error)

	// CreateRooms inserts rooms in one transaction.
	CreateRooms(ctx context.Context, rooms []models.Room) error
}

// BookingRepository stores bookings.
type BookingRepository interface {
	// CreateBooking atomically checks and decrements the room's availability
	// and records the booking. Total is computed from the room's price at
	// the moment of booking. Returns [ErrRoomNotFound] or
	// [ErrNotEnoughRooms] without writing anything.
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)

	// ListBookings returns the user's bookings joined with room metadata,
	// newest first.
	ListBookings(ctx context.Context, userID int64) ([]models.BookingDetails, error)
}

// Pinger reports database liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

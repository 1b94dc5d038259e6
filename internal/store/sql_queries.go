// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/models"
)

var roomColumns = []string{"id", "hotel_name", "location", "name", "price", "available", "image", "amenities"}

func (db *DB) insertUserQuery(user models.User) sq.InsertBuilder {
	return db.builder.
		Insert("users").
		Columns("email", "password").
		Values(user.Email, user.Password)
}

func (db *DB) findUserByEmailQuery(email string) sq.SelectBuilder {
	return db.builder.
		Select("id", "email", "password").
		From("users").
		Where(sq.Eq{"email": email})
}

// listRoomsQuery matches location case-insensitively; an empty location
// returns the whole catalog.
func (db *DB) listRoomsQuery(filter models.RoomFilter) sq.SelectBuilder {
	query := db.builder.
		Select(roomColumns...).
		From("rooms").
		OrderBy("id")

	if filter.Location != "" {
		query = query.Where(sq.Expr("LOWER(location) = LOWER(?)", filter.Location))
	}

	return query
}

func (db *DB) getRoomQuery(roomID int64) sq.SelectBuilder {
	return db.builder.
		Select(roomColumns...).
		From("rooms").
		Where(sq.Eq{"id": roomID})
}

func (db *DB) countRoomsQuery() sq.SelectBuilder {
	return db.builder.Select("COUNT(*)").From("rooms")
}

func (db *DB) insertRoomQuery(room models.Room, amenities string) sq.InsertBuilder {
	return db.builder.
		Insert("rooms").
		Columns("hotel_name", "location", "name", "price", "available", "image", "amenities").
		Values(room.HotelName, room.Location, room.Name, room.Price, room.Available, room.Image, amenities)
}

func (db *DB) selectRoomForBookingQuery(roomID int64) sq.SelectBuilder {
	query := db.builder.
		Select("price", "available").
		From("rooms").
		Where(sq.Eq{"id": roomID})

	if db.driver != config.DriverSQLite {
		query = query.Suffix("FOR UPDATE")
	}

	return query
}

// decrementAvailabilityQuery only matches while enough units are left, so a
// concurrent booking that got there first leaves zero affected rows.
func (db *DB) decrementAvailabilityQuery(roomID, count int64) sq.UpdateBuilder {
	return db.builder.
		Update("rooms").
		Set("available", sq.Expr("available - ?", count)).
		Where(sq.Eq{"id": roomID}).
		Where(sq.GtOrEq{"available": count})
}

func (db *DB) insertBookingQuery(b models.Booking) sq.InsertBuilder {
	return db.builder.
		Insert("bookings").
		Columns("user_id", "room_id", "check_in", "check_out", "booking_date", "room_count", "total").
		Values(b.UserID, b.RoomID, b.CheckIn, b.CheckOut, b.BookingDate, b.RoomCount, b.Total)
}

func (db *DB) listBookingsQuery(userID int64) sq.SelectBuilder {
	return db.builder.
		Select(
			"b.id", "b.user_id", "b.room_id", "b.check_in", "b.check_out",
			"b.booking_date", "b.room_count", "b.total",
			"r.hotel_name", "r.location", "r.name", "r.amenities",
		).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		Where(sq.Eq{"b.user_id": userID}).
		OrderBy("b.booking_date DESC", "b.id DESC")
}

func encodeAmenities(amenities []string) (string, error) {
	if amenities == nil {
		amenities = []string{}
	}

	data, err := json.Marshal(amenities)
	if err != nil {
		return "", fmt.Errorf("error encoding amenities: %w", err)
	}

	return string(data), nil
}

func decodeAmenities(raw string) ([]string, error) {
	amenities := make([]string, 0)
	if strings.TrimSpace(raw) == "" {
		return amenities, nil
	}

	if err := json.Unmarshal([]byte(raw), &amenities); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingAmenities, err)
	}
	if amenities == nil {
		amenities = make([]string, 0)
	}

	return amenities, nil
}

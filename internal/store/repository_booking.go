// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/models"
)

// bookingRepository implements [BookingRepository] against the "bookings"
// and "rooms" tables.
type bookingRepository struct {
	*DB
	logger *logger.Logger
}

func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	return &bookingRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBooking runs the availability check, the decrement and the insert in
// one transaction:
//
//  1. read price and availability of the room (row-locked outside SQLite);
//  2. reject unknown rooms and insufficient availability;
//  3. decrement availability guarded by "available >= count";
//  4. insert the booking with total = price * count.
func (r *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.selectRoomForBookingQuery(booking.RoomID).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var price, available int64
		err = tx.QueryRowContext(ctx, query, args...).Scan(&price, &available)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if available < booking.RoomCount {
			return ErrNotEnoughRooms
		}

		query, args, err = r.decrementAvailabilityQuery(booking.RoomID, booking.RoomCount).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrNotEnoughRooms
		}

		booking.Total = price * booking.RoomCount

		id, err := r.insertReturningID(ctx, tx, r.insertBookingQuery(booking))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		booking.ID = id

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRoomNotFound) && !errors.Is(err, ErrNotEnoughRooms) {
			log.Err(err).
				Str("func", "bookingRepository.CreateBooking").
				Int64("user_id", booking.UserID).
				Int64("room_id", booking.RoomID).
				Msg("failed to create booking")
		}
		return models.Booking{}, err
	}

	return booking, nil
}

func (r *bookingRepository) ListBookings(ctx context.Context, userID int64) ([]models.BookingDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.listBookingsQuery(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookingRepository.ListBookings").
			Int64("user_id", userID).
			Msg("failed to execute query for listing bookings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookings := make([]models.BookingDetails, 0, 8)
	for rows.Next() {
		var (
			b         models.BookingDetails
			amenities string
		)

		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.RoomID,
			&b.CheckIn,
			&b.CheckOut,
			&b.BookingDate,
			&b.RoomCount,
			&b.Total,
			&b.HotelName,
			&b.Location,
			&b.Name,
			&amenities,
		); err != nil {
			log.Err(err).
				Str("func", "bookingRepository.ListBookings").
				Int64("user_id", userID).
				Msg("failed to scan booking row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if b.Amenities, err = decodeAmenities(amenities); err != nil {
			return nil, err
		}

		bookings = append(bookings, b)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "bookingRepository.ListBookings").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return bookings, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/notify"
	"github.com/MKhiriev/go-hotel-booking/internal/store"
	"github.com/MKhiriev/go-hotel-booking/internal/validators"
	"github.com/MKhiriev/go-hotel-booking/models"
)

// notifyTimeout bounds how long a booking waits for the broker.
const notifyTimeout = 3 * time.Second

type bookingService struct {
	bookingRepository store.BookingRepository
	validator         validators.Validator
	notifier          notify.Notifier

	now func() time.Time

	logger *logger.Logger
}

func NewBookingService(bookingRepository store.BookingRepository, validator validators.Validator, notifier notify.Notifier, logger *logger.Logger) BookingService {
	if notifier == nil {
		notifier = notify.NewNop()
	}

	return &bookingService{
		bookingRepository: bookingRepository,
		validator:         validator,
		notifier:          notifier,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateBooking books request.RoomCount units of a room for request.UserID.
//
// Returns the stored booking with ID and Total set, or:
//   - ErrInvalidDataProvided if the request fails validation.
//   - store.ErrRoomNotFound (wrapped) if the room does not exist.
//   - ErrInsufficientAvailability if fewer units are available.
//
// A successful booking is announced through the notifier; a failed
// notification is logged and does not fail the booking.
func (s *bookingService) CreateBooking(ctx context.Context, request models.BookingRequest) (models.Booking, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Int64("user_id", request.UserID).Msg("invalid booking request")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	booking, err := s.bookingRepository.CreateBooking(ctx, models.Booking{
		UserID:      request.UserID,
		RoomID:      request.RoomID,
		CheckIn:     request.CheckIn,
		CheckOut:    request.CheckOut,
		BookingDate: s.now().UTC().Format(models.BookingDateLayout),
		RoomCount:   request.RoomCount,
	})
	switch {
	case errors.Is(err, store.ErrNotEnoughRooms):
		return models.Booking{}, ErrInsufficientAvailability
	case errors.Is(err, store.ErrRoomNotFound):
		return models.Booking{}, fmt.Errorf("booking failed: %w", err)
	case err != nil:
		log.Err(err).Int64("user_id", request.UserID).Int64("room_id", request.RoomID).Msg("booking failed")
		return models.Booking{}, fmt.Errorf("booking failed: %w", err)
	}

	log.Info().
		Int64("booking_id", booking.ID).
		Int64("user_id", booking.UserID).
		Int64("room_id", booking.RoomID).
		Int64("room_count", booking.RoomCount).
		Int64("total", booking.Total).
		Msg("booking created")

	s.notify(ctx, booking)

	return booking, nil
}

func (s *bookingService) notify(ctx context.Context, booking models.Booking) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	err := s.notifier.BookingCreated(ctx, models.BookingCreatedEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		RoomID:      booking.RoomID,
		RoomCount:   booking.RoomCount,
		Total:       booking.Total,
		CheckIn:     booking.CheckIn,
		CheckOut:    booking.CheckOut,
		BookingDate: booking.BookingDate,
	})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("booking_id", booking.ID).Msg("booking notification failed")
	}
}

// ListBookings returns the user's bookings, newest first.
func (s *bookingService) ListBookings(ctx context.Context, userID int64) ([]models.BookingDetails, error) {
	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	bookings, err := s.bookingRepository.ListBookings(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing bookings failed")
		return nil, fmt.Errorf("listing bookings failed: %w", err)
	}

	return bookings, nil
}

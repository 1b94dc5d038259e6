// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-hotel-booking/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the authenticated owner of a booking request.
	FieldUserID = "user_id"

	// FieldRoomID targets the identifier of the room being booked.
	FieldRoomID = "room_id"

	// FieldRoomCount targets the number of units requested.
	FieldRoomCount = "room_count"

	// FieldEmail targets the login email of a credentials pair.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a credentials pair.
	FieldPassword = "password"
)

// BookingValidator validates booking requests and login credentials.
// Check-in and check-out strings are intentionally left unchecked; they are
// stored as supplied.
type BookingValidator struct {
}

func NewBookingValidator() Validator {
	return &BookingValidator{}
}

func (v *BookingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BookingRequest:
		return v.validateBookingRequest(ctx, value, fields...)
	case *models.BookingRequest:
		return v.validateBookingRequest(ctx, *value, fields...)

	case models.User:
		return v.validateCredentials(ctx, value, fields...)
	case *models.User:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BookingValidator) validateBookingRequest(ctx context.Context, request models.BookingRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldRoomID, FieldRoomCount}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldRoomID:
			if request.RoomID <= 0 {
				return ErrInvalidRoomID
			}
		case FieldRoomCount:
			if request.RoomCount < 1 {
				return ErrInvalidRoomCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BookingValidator) validateCredentials(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

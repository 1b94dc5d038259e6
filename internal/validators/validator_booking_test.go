// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-hotel-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validBookingRequest() models.BookingRequest {
	return models.BookingRequest{
		UserID:    1,
		RoomID:    1,
		CheckIn:   "2026-05-01",
		CheckOut:  "2026-05-03",
		RoomCount: 2,
	}
}

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestNewBookingValidator(t *testing.T) {
	v := NewBookingValidator()
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewBookingValidator()

	err := v.Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerAndValueAreEquivalent(t *testing.T) {
	v := NewBookingValidator()
	req := validBookingRequest()

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

// ---------------------------------------------------------------------------
// BookingRequest
// ---------------------------------------------------------------------------

func TestValidate_BookingRequest(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *models.BookingRequest)
		wantErr error
	}{
		{name: "valid", modify: func(r *models.BookingRequest) {}},
		{name: "dates are not checked", modify: func(r *models.BookingRequest) { r.CheckIn, r.CheckOut = "", "yesterday" }},
		{name: "zero user", modify: func(r *models.BookingRequest) { r.UserID = 0 }, wantErr: ErrInvalidUserID},
		{name: "zero room", modify: func(r *models.BookingRequest) { r.RoomID = 0 }, wantErr: ErrInvalidRoomID},
		{name: "negative room", modify: func(r *models.BookingRequest) { r.RoomID = -3 }, wantErr: ErrInvalidRoomID},
		{name: "zero count", modify: func(r *models.BookingRequest) { r.RoomCount = 0 }, wantErr: ErrInvalidRoomCount},
		{name: "negative count", modify: func(r *models.BookingRequest) { r.RoomCount = -1 }, wantErr: ErrInvalidRoomCount},
	}

	v := NewBookingValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.modify(&req)

			err := v.Validate(context.Background(), req)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_BookingRequest_FieldScoping(t *testing.T) {
	v := NewBookingValidator()
	req := validBookingRequest()
	req.UserID = 0

	assert.NoError(t, v.Validate(context.Background(), req, FieldRoomID, FieldRoomCount))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldUserID), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "checkIn"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewBookingValidator()

	assert.NoError(t, v.Validate(context.Background(), models.User{Email: "a@b.c", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{Email: "  ", Password: "pw"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.User{Email: "a@b.c"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}, "token"), ErrUnknownField)
}

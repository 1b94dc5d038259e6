// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-hotel-booking/internal/adapter"
	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAdapter struct {
	token string

	LoginFunc        func(ctx context.Context, email, password string) (string, error)
	CheckSessionFunc func(ctx context.Context) (bool, error)
	LogoutFunc       func(ctx context.Context) (string, error)
	RoomsFunc        func(ctx context.Context, location string) ([]models.Room, error)
	BookFunc         func(ctx context.Context, req models.BookingRequest) (models.BookingResponse, error)
	BookingsFunc     func(ctx context.Context) ([]models.BookingDetails, error)

	loginCalls int
}

func (m *mockAdapter) SetToken(token string) { m.token = token }
func (m *mockAdapter) Token() string         { return m.token }

func (m *mockAdapter) Login(ctx context.Context, email, password string) (string, error) {
	m.loginCalls++
	if m.LoginFunc != nil {
		token, err := m.LoginFunc(ctx, email, password)
		if err == nil {
			m.token = token
		}
		return token, err
	}
	m.token = "token"
	return m.token, nil
}

func (m *mockAdapter) CheckSession(ctx context.Context) (bool, error) {
	if m.CheckSessionFunc != nil {
		return m.CheckSessionFunc(ctx)
	}
	return m.token != "", nil
}

func (m *mockAdapter) Logout(ctx context.Context) (string, error) {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return "Logged out successfully", nil
}

func (m *mockAdapter) Rooms(ctx context.Context, location string) ([]models.Room, error) {
	if m.RoomsFunc != nil {
		return m.RoomsFunc(ctx, location)
	}
	return []models.Room{}, nil
}

func (m *mockAdapter) Book(ctx context.Context, req models.BookingRequest) (models.BookingResponse, error) {
	if m.BookFunc != nil {
		return m.BookFunc(ctx, req)
	}
	return models.BookingResponse{}, nil
}

func (m *mockAdapter) Bookings(ctx context.Context) ([]models.BookingDetails, error) {
	if m.BookingsFunc != nil {
		return m.BookingsFunc(ctx)
	}
	return []models.BookingDetails{}, nil
}

func newTestApp(api adapter.ServerAdapter, email, password string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := &config.ClientConfig{Email: email, Password: password}
	return NewApp(api, cfg, out, logger.Nop()), out
}

func TestApp_Rooms(t *testing.T) {
	var gotLocation string
	api := &mockAdapter{
		RoomsFunc: func(_ context.Context, location string) ([]models.Room, error) {
			gotLocation = location
			return []models.Room{{
				ID: 1, HotelName: "Hotel Sea View", Location: "Puri", Name: "Standard",
				Price: 1500, Available: 5, Amenities: []string{"Wi-Fi", "TV"},
			}}, nil
		},
	}
	app, out := newTestApp(api, "", "")

	require.NoError(t, app.Run(context.Background(), []string{"rooms", "Puri"}))

	assert.Equal(t, "Puri", gotLocation)
	assert.Contains(t, out.String(), "Hotel Sea View")
	assert.Contains(t, out.String(), "Wi-Fi, TV")
	assert.Zero(t, api.loginCalls, "listing rooms must not log in")
}

func TestApp_RoomsMultiWordLocation(t *testing.T) {
	var gotLocation string
	api := &mockAdapter{
		RoomsFunc: func(_ context.Context, location string) ([]models.Room, error) {
			gotLocation = location
			return nil, nil
		},
	}
	app, _ := newTestApp(api, "", "")

	require.NoError(t, app.Run(context.Background(), []string{"rooms", "New", "Delhi"}))
	assert.Equal(t, "New Delhi", gotLocation)
}

func TestApp_Book(t *testing.T) {
	var got models.BookingRequest
	api := &mockAdapter{
		BookFunc: func(_ context.Context, req models.BookingRequest) (models.BookingResponse, error) {
			got = req
			return models.BookingResponse{Message: "Booking successful", Total: 3000}, nil
		},
	}
	app, out := newTestApp(api, "test@example.com", "password123")

	err := app.Run(context.Background(), []string{"book", "1", "2", "2026-11-01", "2026-11-03"})
	require.NoError(t, err)

	assert.Equal(t, models.BookingRequest{
		RoomID: 1, RoomCount: 2, CheckIn: "2026-11-01", CheckOut: "2026-11-03",
	}, got)
	assert.Equal(t, 1, api.loginCalls)
	assert.Equal(t, "Booking successful, total: 3000\n", out.String())
}

func TestApp_BookArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no arguments", args: []string{"book"}, want: ErrMissingArguments},
		{name: "only room id", args: []string{"book", "1"}, want: ErrMissingArguments},
		{name: "room id not a number", args: []string{"book", "x", "1"}, want: ErrInvalidArgument},
		{name: "count not a number", args: []string{"book", "1", "two"}, want: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAdapter{}
			app, _ := newTestApp(api, "test@example.com", "password123")

			err := app.Run(context.Background(), tt.args)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, api.loginCalls)
		})
	}
}

func TestApp_BookWithoutCredentials(t *testing.T) {
	api := &mockAdapter{}
	app, _ := newTestApp(api, "", "")

	err := app.Run(context.Background(), []string{"book", "1", "1"})
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestApp_BookUsesExistingToken(t *testing.T) {
	api := &mockAdapter{token: "already-there"}
	app, _ := newTestApp(api, "", "")

	require.NoError(t, app.Run(context.Background(), []string{"book", "1", "1"}))
	assert.Zero(t, api.loginCalls)
}

func TestApp_BookLoginFailure(t *testing.T) {
	api := &mockAdapter{
		LoginFunc: func(context.Context, string, string) (string, error) {
			return "", adapter.ErrUnauthorized
		},
	}
	app, _ := newTestApp(api, "test@example.com", "wrong")

	err := app.Run(context.Background(), []string{"book", "1", "1"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestApp_Bookings(t *testing.T) {
	api := &mockAdapter{
		BookingsFunc: func(context.Context) ([]models.BookingDetails, error) {
			return []models.BookingDetails{{
				Booking: models.Booking{
					ID: 7, RoomCount: 2, Total: 3000,
					BookingDate: "2026-10-18T10:00:00.000Z",
				},
				HotelName: "Hotel Sea View",
				Location:  "Puri",
				Name:      "Standard",
			}}, nil
		},
	}
	app, out := newTestApp(api, "test@example.com", "password123")

	require.NoError(t, app.Run(context.Background(), []string{"bookings"}))
	assert.Contains(t, out.String(), "2026-10-18T10:00:00.000Z")
	assert.Contains(t, out.String(), "3000")
}

func TestApp_Session(t *testing.T) {
	api := &mockAdapter{}
	app, out := newTestApp(api, "test@example.com", "password123")

	require.NoError(t, app.Run(context.Background(), []string{"session"}))
	assert.Equal(t, "logged in: true\n", out.String())
}

func TestApp_Logout(t *testing.T) {
	api := &mockAdapter{}
	app, out := newTestApp(api, "", "")

	require.NoError(t, app.Run(context.Background(), []string{"logout"}))
	assert.Equal(t, "Logged out successfully\n", out.String())
}

func TestApp_ServerErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	api := &mockAdapter{
		RoomsFunc: func(context.Context, string) ([]models.Room, error) { return nil, boom },
	}
	app, _ := newTestApp(api, "", "")

	assert.ErrorIs(t, app.Run(context.Background(), []string{"rooms"}), boom)
}

func TestApp_UsageErrors(t *testing.T) {
	app, out := newTestApp(&mockAdapter{}, "", "")

	assert.ErrorIs(t, app.Run(context.Background(), nil), ErrMissingArguments)
	assert.Contains(t, out.String(), "usage:")

	out.Reset()
	assert.ErrorIs(t, app.Run(context.Background(), []string{"dance"}), ErrUnknownCommand)
	assert.Contains(t, out.String(), "usage:")

	out.Reset()
	assert.NoError(t, app.Run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "commands:")
}

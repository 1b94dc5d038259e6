// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/service"
	"github.com/MKhiriev/go-hotel-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn     func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	checkSessionFn func(ctx context.Context, tokenString string) bool
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return models.User{UserID: 1, Email: user.Email}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString == "valid-token" {
		return models.Token{SignedString: tokenString, UserID: 1}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) CheckSession(ctx context.Context, tokenString string) bool {
	if m.checkSessionFn != nil {
		return m.checkSessionFn(ctx, tokenString)
	}
	_, err := m.ParseToken(ctx, tokenString)
	return err == nil
}

type mockRoomService struct {
	listRoomsFn func(ctx context.Context, location string) ([]models.Room, error)
}

func (m *mockRoomService) ListRooms(ctx context.Context, location string) ([]models.Room, error) {
	if m.listRoomsFn != nil {
		return m.listRoomsFn(ctx, location)
	}
	return []models.Room{}, nil
}

type mockBookingService struct {
	createBookingFn func(ctx context.Context, request models.BookingRequest) (models.Booking, error)
	listBookingsFn  func(ctx context.Context, userID int64) ([]models.BookingDetails, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, request models.BookingRequest) (models.Booking, error) {
	if m.createBookingFn != nil {
		return m.createBookingFn(ctx, request)
	}
	return models.Booking{Total: 0}, nil
}

func (m *mockBookingService) ListBookings(ctx context.Context, userID int64) ([]models.BookingDetails, error) {
	if m.listBookingsFn != nil {
		return m.listBookingsFn(ctx, userID)
	}
	return []models.BookingDetails{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testDeps struct {
	auth    *mockAuthService
	rooms   *mockRoomService
	booking *mockBookingService
	limiter RateLimiter
	static  string
}

func newTestRouter(t *testing.T, deps testDeps) http.Handler {
	t.Helper()
	if deps.auth == nil {
		deps.auth = &mockAuthService{}
	}
	if deps.rooms == nil {
		deps.rooms = &mockRoomService{}
	}
	if deps.booking == nil {
		deps.booking = &mockBookingService{}
	}

	services := &service.Services{
		AuthService:    deps.auth,
		RoomService:    deps.rooms,
		BookingService: deps.booking,
	}
	cfg := config.Server{StaticDir: deps.static, RequestTimeout: 5 * time.Second}

	return NewHandler(services, cfg, deps.limiter, logger.Nop()).Init()
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	limiter := NewLocalRateLimiter(5, time.Minute)
	log := logger.Nop()

	h := NewHandler(svc, config.Server{StaticDir: "public", RequestTimeout: time.Second}, limiter, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, limiter, h.limiter)
	assert.Equal(t, "public", h.staticDir)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.Equal(t, log, h.logger)
}

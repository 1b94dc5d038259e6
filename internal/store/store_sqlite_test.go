// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "hotel.db"),
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func seedRooms(t *testing.T, s *Storages) []models.Room {
	t.Helper()
	rooms := []models.Room{
		{HotelName: "Hotel Sea View", Location: "Puri", Name: "Standard Room", Price: 1500, Available: 5, Image: "/images/puri.jpg", Amenities: []string{"Wi-Fi", "TV", "AC"}},
		{HotelName: "Hill Top", Location: "Shimla", Name: "Deluxe Room", Price: 3000, Available: 2, Amenities: nil},
		{HotelName: "Beach Hut", Location: "puri", Name: "Hut", Price: 800, Available: 1, Amenities: []string{"Fan"}},
	}
	require.NoError(t, s.RoomRepository.CreateRooms(context.Background(), rooms))

	stored, err := s.RoomRepository.ListRooms(context.Background(), models.RoomFilter{})
	require.NoError(t, err)
	require.Len(t, stored, len(rooms))

	return stored
}

func createUser(t *testing.T, s *Storages, email string) models.User {
	t.Helper()
	u, err := s.UserRepository.CreateUser(context.Background(), models.User{Email: email, Password: "hash"})
	require.NoError(t, err)
	return u
}

// ── users ─────────────────────────────────────────────────────────────────────

func TestSQLite_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created := createUser(t, s, "test@example.com")
	assert.Positive(t, created.UserID)

	found, err := s.UserRepository.FindUserByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "hash", found.Password)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Email: "test@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = s.UserRepository.FindUserByEmail(ctx, "TEST@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// ── rooms ─────────────────────────────────────────────────────────────────────

func TestSQLite_ListRooms_LocationFilter(t *testing.T) {
	s := newSQLiteStorages(t)
	seedRooms(t, s)
	ctx := context.Background()

	all, err := s.RoomRepository.ListRooms(ctx, models.RoomFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	for _, loc := range []string{"puri", "PURI", "Puri"} {
		rooms, err := s.RoomRepository.ListRooms(ctx, models.RoomFilter{Location: loc})
		require.NoError(t, err)
		assert.Len(t, rooms, 2, "location %q", loc)
	}

	none, err := s.RoomRepository.ListRooms(ctx, models.RoomFilter{Location: "Goa"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSQLite_Rooms_RoundTrip(t *testing.T) {
	s := newSQLiteStorages(t)
	stored := seedRooms(t, s)
	ctx := context.Background()

	room, err := s.RoomRepository.GetRoom(ctx, stored[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Hotel Sea View", room.HotelName)
	assert.Equal(t, []string{"Wi-Fi", "TV", "AC"}, room.Amenities)
	assert.Equal(t, int64(1500), room.Price)

	// nil amenities are stored as an empty list
	room, err = s.RoomRepository.GetRoom(ctx, stored[1].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, room.Amenities)

	_, err = s.RoomRepository.GetRoom(ctx, 9999)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	count, err := s.RoomRepository.CountRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

// ── bookings ──────────────────────────────────────────────────────────────────

func TestSQLite_CreateBooking_DecrementsAvailability(t *testing.T) {
	s := newSQLiteStorages(t)
	rooms := seedRooms(t, s)
	user := createUser(t, s, "a@example.com")
	ctx := context.Background()

	b, err := s.BookingRepository.CreateBooking(ctx, models.Booking{
		UserID: user.UserID, RoomID: rooms[0].ID, CheckIn: "2026-05-01", CheckOut: "2026-05-03",
		BookingDate: "2026-04-01T10:00:00.000Z", RoomCount: 2,
	})
	require.NoError(t, err)
	assert.Positive(t, b.ID)
	assert.Equal(t, int64(3000), b.Total)

	room, err := s.RoomRepository.GetRoom(ctx, rooms[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), room.Available)
}

func TestSQLite_CreateBooking_ExactAvailabilityThenInsufficient(t *testing.T) {
	s := newSQLiteStorages(t)
	rooms := seedRooms(t, s)
	user := createUser(t, s, "a@example.com")
	ctx := context.Background()

	booking := models.Booking{UserID: user.UserID, RoomID: rooms[1].ID, BookingDate: "2026-04-01T10:00:00.000Z", RoomCount: 2}

	_, err := s.BookingRepository.CreateBooking(ctx, booking)
	require.NoError(t, err)

	booking.RoomCount = 1
	_, err = s.BookingRepository.CreateBooking(ctx, booking)
	assert.ErrorIs(t, err, ErrNotEnoughRooms)

	room, err := s.RoomRepository.GetRoom(ctx, rooms[1].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), room.Available)

	list, err := s.BookingRepository.ListBookings(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSQLite_CreateBooking_UnknownRoom(t *testing.T) {
	s := newSQLiteStorages(t)
	user := createUser(t, s, "a@example.com")

	_, err := s.BookingRepository.CreateBooking(context.Background(), models.Booking{
		UserID: user.UserID, RoomID: 404, BookingDate: "2026-04-01T10:00:00.000Z", RoomCount: 1,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestSQLite_ListBookings_NewestFirstAndIsolated(t *testing.T) {
	s := newSQLiteStorages(t)
	rooms := seedRooms(t, s)
	alice := createUser(t, s, "alice@example.com")
	bob := createUser(t, s, "bob@example.com")
	ctx := context.Background()

	dates := []string{"2026-04-01T10:00:00.000Z", "2026-04-03T10:00:00.000Z", "2026-04-02T10:00:00.000Z"}
	for _, d := range dates {
		_, err := s.BookingRepository.CreateBooking(ctx, models.Booking{UserID: alice.UserID, RoomID: rooms[0].ID, BookingDate: d, RoomCount: 1})
		require.NoError(t, err)
	}
	_, err := s.BookingRepository.CreateBooking(ctx, models.Booking{UserID: bob.UserID, RoomID: rooms[2].ID, BookingDate: "2026-04-05T10:00:00.000Z", RoomCount: 1})
	require.NoError(t, err)

	list, err := s.BookingRepository.ListBookings(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2026-04-03T10:00:00.000Z", list[0].BookingDate)
	assert.Equal(t, "2026-04-02T10:00:00.000Z", list[1].BookingDate)
	assert.Equal(t, "2026-04-01T10:00:00.000Z", list[2].BookingDate)
	for _, b := range list {
		assert.Equal(t, alice.UserID, b.UserID)
		assert.Equal(t, "Hotel Sea View", b.HotelName)
		assert.Equal(t, "Puri", b.Location)
		assert.Equal(t, "Standard Room", b.Name)
		assert.Equal(t, []string{"Wi-Fi", "TV", "AC"}, b.Amenities)
	}

	empty, err := s.BookingRepository.ListBookings(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSQLite_CreateBooking_ConcurrentNeverOversells(t *testing.T) {
	s := newSQLiteStorages(t)
	rooms := seedRooms(t, s)
	ctx := context.Background()

	const workers = 10
	users := make([]models.User, workers)
	for i := range users {
		users[i] = createUser(t, s, fmt.Sprintf("user%d@example.com", i))
	}

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(u models.User) {
			defer wg.Done()
			_, err := s.BookingRepository.CreateBooking(ctx, models.Booking{
				UserID: u.UserID, RoomID: rooms[0].ID, BookingDate: "2026-04-01T10:00:00.000Z", RoomCount: 1,
			})
			if err == nil {
				succeeded.Add(1)
			}
		}(users[i])
	}
	wg.Wait()

	assert.Equal(t, int64(5), succeeded.Load())

	room, err := s.RoomRepository.GetRoom(ctx, rooms[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), room.Available)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the booking API: credential
// checks and token issuing, the room catalog, the booking flow and first-run
// seeding. Services depend on store interfaces only.
package service

import (
	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/notify"
	"github.com/MKhiriev/go-hotel-booking/internal/store"
	"github.com/MKhiriev/go-hotel-booking/internal/validators"
)

type Services struct {
	AuthService    AuthService
	RoomService    RoomService
	BookingService BookingService
	SeedService    SeedService
}

func NewServices(storages *store.Storages, notifier notify.Notifier, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewBookingValidator()
	authService := NewAuthService(storages.UserRepository, validator, cfg.App, logger)

	return &Services{
		AuthService:    authService,
		RoomService:    NewRoomService(storages.RoomRepository, logger),
		BookingService: NewBookingService(storages.BookingRepository, validator, notifier, logger),
		SeedService:    NewSeedService(storages.RoomRepository, authService, cfg.App, logger),
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/store"
	"github.com/MKhiriev/go-hotel-booking/models"
)

//go:embed seed/rooms.json
var bundledRooms []byte

// seedService fills an empty catalog and makes sure the default account
// exists. It is run once on startup, after migrations.
type seedService struct {
	roomRepository store.RoomRepository
	authService    AuthService

	seedFile     string
	userEmail    string
	userPassword string

	logger *logger.Logger
}

func NewSeedService(roomRepository store.RoomRepository, authService AuthService, cfg config.App, logger *logger.Logger) SeedService {
	return &seedService{
		roomRepository: roomRepository,
		authService:    authService,
		seedFile:       cfg.SeedFile,
		userEmail:      cfg.SeedUserEmail,
		userPassword:   cfg.SeedUserPassword,
		logger:         logger,
	}
}

// Seed inserts the room catalog when the rooms table is empty and registers
// the default user unless that email is already taken.
func (s *seedService) Seed(ctx context.Context) error {
	if err := s.seedRooms(ctx); err != nil {
		return err
	}

	return s.seedUser(ctx)
}

func (s *seedService) seedRooms(ctx context.Context) error {
	count, err := s.roomRepository.CountRooms(ctx)
	if err != nil {
		return fmt.Errorf("counting rooms failed: %w", err)
	}
	if count > 0 {
		s.logger.Info().Int64("rooms", count).Msg("rooms table already has data, skipping seeding")
		return nil
	}

	rooms, err := s.loadRooms()
	if err != nil {
		return err
	}

	if err = s.roomRepository.CreateRooms(ctx, rooms); err != nil {
		return fmt.Errorf("seeding rooms failed: %w", err)
	}

	s.logger.Info().Int("rooms", len(rooms)).Msg("rooms seeded")
	return nil
}

func (s *seedService) loadRooms() ([]models.Room, error) {
	data := bundledRooms
	if s.seedFile != "" {
		fileData, err := os.ReadFile(s.seedFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadingSeedFile, err)
		}
		data = fileData
	}

	var rooms []models.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSeedFile, err)
	}

	return rooms, nil
}

func (s *seedService) seedUser(ctx context.Context) error {
	if s.userEmail == "" || s.userPassword == "" {
		return nil
	}

	_, err := s.authService.RegisterUser(ctx, models.User{Email: s.userEmail, Password: s.userPassword})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		s.logger.Debug().Str("email", s.userEmail).Msg("default user already exists")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seeding default user failed: %w", err)
	}

	s.logger.Info().Str("email", s.userEmail).Msg("default user seeded")
	return nil
}

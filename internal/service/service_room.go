// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/store"
	"github.com/MKhiriev/go-hotel-booking/models"
)

// allLocations is the location value that disables filtering.
const allLocations = "all"

type roomService struct {
	roomRepository store.RoomRepository
	logger         *logger.Logger
}

func NewRoomService(roomRepository store.RoomRepository, logger *logger.Logger) RoomService {
	return &roomService{
		roomRepository: roomRepository,
		logger:         logger,
	}
}

func (s *roomService) ListRooms(ctx context.Context, location string) ([]models.Room, error) {
	filter := models.RoomFilter{Location: strings.TrimSpace(location)}
	if strings.EqualFold(filter.Location, allLocations) {
		filter.Location = ""
	}

	rooms, err := s.roomRepository.ListRooms(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("location", filter.Location).Msg("listing rooms failed")
		return nil, fmt.Errorf("listing rooms failed: %w", err)
	}

	return rooms, nil
}

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

// roomRepository implements [RoomRepository] against the "rooms" table.
type roomRepository struct {
	*DB
	logger *logger.Logger
}

func NewRoomRepository(db *DB, logger *logger.Logger) RoomRepository {
	return &roomRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (models.Room, error) {
	var (
		room      models.Room
		amenities string
	)

	if err := row.Scan(
		&room.ID,
		&room.HotelName,
		&room.Location,
		&room.Name,
		&room.Price,
		&room.Available,
		&room.Image,
		&amenities,
	); err != nil {
		return models.Room{}, err
	}

	decoded, err := decodeAmenities(amenities)
	if err != nil {
		return models.Room{}, err
	}
	room.Amenities = decoded

	return room, nil
}

func (r *roomRepository) ListRooms(ctx context.Context, filter models.RoomFilter) ([]models.Room, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.listRoomsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "roomRepository.ListRooms").
			Str("location", filter.Location).
			Msg("failed to execute query for listing rooms")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	rooms := make([]models.Room, 0, 16)
	for rows.Next() {
		room, scanErr := scanRoom(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "roomRepository.ListRooms").Msg("failed to scan room row")
			if errors.Is(scanErr, ErrDecodingAmenities) {
				return nil, scanErr
			}
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		rooms = append(rooms, room)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "roomRepository.ListRooms").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return rooms, nil
}

func (r *roomRepository) GetRoom(ctx context.Context, roomID int64) (models.Room, error) {
	query, args, err := r.getRoomQuery(roomID).ToSql()
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	room, err := scanRoom(r.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Room{}, ErrRoomNotFound
	case errors.Is(err, ErrDecodingAmenities):
		return models.Room{}, err
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "roomRepository.GetRoom").Int64("room_id", roomID).Msg("failed to get room")
		return models.Room{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return room, nil
}

func (r *roomRepository) CountRooms(ctx context.Context) (int64, error) {
	query, args, err := r.countRoomsQuery().ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *roomRepository) CreateRooms(ctx context.Context, rooms []models.Room) error {
	log := logger.FromContext(ctx)

	return r.inTx(ctx, func(tx *sql.Tx) error {
		for i, room := range rooms {
			amenities, err := encodeAmenities(room.Amenities)
			if err != nil {
				return err
			}

			if _, err := r.insertReturningID(ctx, tx, r.insertRoomQuery(room, amenities)); err != nil {
				log.Err(err).
					Str("func", "roomRepository.CreateRooms").
					Int("iteration", i).
					Msg("failed to insert room")
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
		}

		return nil
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
)

// Storages groups the repositories sharing one database connection.
type Storages struct {
	UserRepository    UserRepository
	RoomRepository    RoomRepository
	BookingRepository BookingRepository

	// DB is exposed for health checks and shutdown.
	DB *DB
}

// NewStorages connects to the database selected by cfg.DB.Driver, applies
// pending migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB wires the repositories on an already migrated db.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		RoomRepository:    NewRoomRepository(db, log),
		BookingRepository: NewBookingRepository(db, log),
		DB:                db,
	}
}

// Connect opens a connection for the configured driver.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverMySQL:
		db, err = NewConnectMySQL(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDBDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}

	return s.DB.Close()
}

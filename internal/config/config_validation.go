// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied by [StructuredConfig.applyDefaults] to fields left
// empty by every source.
const (
	DefaultDBDriver         = DriverSQLite
	DefaultSQLiteDSN        = "./hotel.db"
	DefaultHTTPAddress      = ":3000"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultStaticDir        = "public"
	DefaultTokenIssuer      = "go-hotel-booking"
	DefaultTokenDuration    = time.Hour
	DefaultBrokerQueue      = "booking.created"
	DefaultRateLimitCount   = 5
	DefaultRateLimitWindow  = time.Minute
	DefaultSeedUserEmail    = "test@example.com"
	DefaultSeedUserPassword = "password123"
)

// Supported values of [DB.Driver].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// applyDefaults fills every unset field that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == DriverSQLite {
		cfg.Storage.DB.DSN = DefaultSQLiteDSN
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = DefaultStaticDir
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.App.SeedUserEmail == "" {
		cfg.App.SeedUserEmail = DefaultSeedUserEmail
	}
	if cfg.App.SeedUserPassword == "" {
		cfg.App.SeedUserPassword = DefaultSeedUserPassword
	}

	if cfg.Broker.Queue == "" {
		cfg.Broker.Queue = DefaultBrokerQueue
	}

	if cfg.RateLimit.Requests == 0 {
		cfg.RateLimit.Requests = DefaultRateLimitCount
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = DefaultRateLimitWindow
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return ErrUnsupportedDBDriver
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidAppConfigs
	}

	if cfg.RateLimit.Requests < 0 || cfg.RateLimit.Window < 0 {
		return ErrInvalidRateLimitConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

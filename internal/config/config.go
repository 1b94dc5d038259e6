// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// hotel booking server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and seed settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Broker holds the message broker used for booking notifications.
	Broker Broker `envPrefix:"BROKER_"`

	// RateLimit holds the login rate limiter settings.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and first-run seeding.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Tokens with a different issuer are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance. Defaults to one hour.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the work factor used when hashing passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// SeedFile is an optional path to a JSON array of rooms loaded on first
	// run. When empty, the bundled catalog is used.
	// Env: APP_SEED_FILE
	SeedFile string `env:"SEED_FILE"`

	// SeedUserEmail and SeedUserPassword describe the default account that
	// is created on startup if it does not exist yet.
	// Env: APP_SEED_USER_EMAIL, APP_SEED_USER_PASSWORD
	SeedUserEmail    string `env:"SEED_USER_EMAIL"`
	SeedUserPassword string `env:"SEED_USER_PASSWORD"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000" or ":3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint.
	// Empty disables the gRPC listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StaticDir is the directory whose files are served at "/".
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the backend: "sqlite3" (embedded file, default),
	// "postgres" or "mysql".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name passed to the selected driver
	// (a file path for sqlite3, a URL for postgres, a go-sql-driver DSN
	// for mysql).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Broker holds the RabbitMQ settings for booking notifications.
type Broker struct {
	// URL is the AMQP URL. Empty disables notifications.
	// Env: BROKER_URL
	URL string `env:"URL"`

	// Queue is the durable queue booking events are published to.
	// Env: BROKER_QUEUE
	Queue string `env:"QUEUE"`
}

// RateLimit holds the login rate limiter settings.
type RateLimit struct {
	// Enabled turns the limiter on.
	// Env: RATE_LIMIT_ENABLED
	Enabled bool `env:"ENABLED"`

	// Requests is the number of login attempts allowed per client in Window.
	// Env: RATE_LIMIT_REQUESTS
	Requests int `env:"REQUESTS"`

	// Window is the length of the counting window.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`

	// RedisAddress switches the limiter to shared Redis counters.
	// When empty, limits are kept in process memory.
	// Env: RATE_LIMIT_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword is the optional Redis password.
	// Env: RATE_LIMIT_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to the merged result before validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

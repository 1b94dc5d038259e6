// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN for a hosted database).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDBDriver indicates a driver other than sqlite3,
	// postgres or mysql.
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or out-of-range bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidRateLimitConfigs indicates negative rate limit settings.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
